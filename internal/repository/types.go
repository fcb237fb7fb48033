package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Search  string
	OnlyNew bool
	Limit   int
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	CustomerID string
	SortDesc   bool
	Limit      int
}
