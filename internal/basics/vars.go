package basics

var (
	A                      int     = 1
	Pi                     float64 = 3.14
	IUnderstandAnnotations bool    = true
	School                 string  = "Holberton"
)
