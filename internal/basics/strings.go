package basics

func Concat(s1, s2 string) string {
	return s1 + s2
}
