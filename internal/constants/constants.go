package constants

// 订单状态常量（由后端驱动，客户端只读）
const (
	OrderStatusOpen          = "abierto"
	OrderStatusInPreparation = "in-preparation"
	OrderStatusShipped       = "shipped"
	OrderStatusDelivered     = "delivered"
	OrderStatusClosed        = "cerrado"
	OrderStatusProcessed     = "procesado"
)

// 账户状态常量
const (
	AccountStatusActive    = "active"
	AccountStatusSuspended = "suspended"
)

// 用户角色常量
const (
	UserRoleCustomer = "customer"
)

// 目录排序常量
const (
	SortByTitle     = "title"
	SortByAuthor    = "author"
	SortByPriceAsc  = "price-asc"
	SortByPriceDesc = "price-desc"
)

// 视图常量（下单成功后导航目标等）
const (
	ViewCatalog   = "catalog"
	ViewCart      = "cart"
	ViewOrders    = "orders"
	ViewDashboard = "dashboard"
)

// 出版社（sello）常量
const (
	ImprintUrano  = "Urano"
	ImprintPaidos = "Paidós"
	ImprintKepler = "Kepler"
	ImprintDebate = "Debate"
)

// Imprints 目录可筛选的出版社列表
var Imprints = []string{ImprintUrano, ImprintPaidos, ImprintKepler, ImprintDebate}

// 分页与限制常量
const (
	CatalogPageSize        = 12
	DashboardPageSize      = 18
	MaxObservationsLength  = 500
	DashboardInvoiceLimit  = 3
	DashboardOrderLimit    = 3
	DashboardNewArrivals   = 5
	RelatedProductsLimit   = 4
	OrderNumberMin         = 1000
	OrderNumberMax         = 9999
	DefaultFallbackUserID  = "demo"
	DefaultFallbackName    = "Librería El Ateneo"
	StockAlertSuccessToast = "Te avisaremos cuando esté disponible"
)

// 队列常量
const (
	QueueDefault           = "default"
	TaskStockAlertDispatch = "stock_alert:dispatch"
)

// 缓存键常量
const (
	CacheKeyProductList = "products:list"
)
