package consts

const (
	CategoryListKey = "category:list"
)
