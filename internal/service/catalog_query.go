package service

import (
	"sort"
	"strings"

	"github.com/urano-b2b/internal/constants"
	"github.com/urano-b2b/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CatalogCriteria 目录筛选条件
type CatalogCriteria struct {
	Search   string
	Imprints []string
	OnlyNew  bool
	Sort     string
}

// CatalogPage 筛选后的分页结果
type CatalogPage struct {
	Items      []models.Product
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// ApplyCatalogQuery 依次执行搜索、出版社筛选、新书筛选、排序和分页
func ApplyCatalogQuery(products []models.Product, criteria CatalogCriteria, page, pageSize int) CatalogPage {
	filtered := filterBySearch(products, criteria.Search)
	filtered = filterByImprints(filtered, criteria.Imprints)
	if criteria.OnlyNew {
		filtered = filterNew(filtered)
	}
	sortProducts(filtered, criteria.Sort)
	return paginate(filtered, page, pageSize)
}

func filterBySearch(products []models.Product, search string) []models.Product {
	query := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Product, 0, len(products))
	for _, product := range products {
		if query == "" || matchesSearch(product, query) {
			out = append(out, product)
		}
	}
	return out
}

func matchesSearch(product models.Product, query string) bool {
	for _, field := range []string{product.Title, product.Author, product.ISBN, product.Sello} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func filterByImprints(products []models.Product, imprints []string) []models.Product {
	if len(imprints) == 0 {
		return products
	}
	selected := make(map[string]struct{}, len(imprints))
	for _, imprint := range imprints {
		selected[imprint] = struct{}{}
	}
	out := products[:0:0]
	for _, product := range products {
		if _, ok := selected[product.Sello]; ok {
			out = append(out, product)
		}
	}
	return out
}

func filterNew(products []models.Product) []models.Product {
	out := products[:0:0]
	for _, product := range products {
		if product.IsNew {
			out = append(out, product)
		}
	}
	return out
}

// sortProducts 稳定排序，书名与作者按西班牙语规则比较
func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case constants.SortByPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price.Decimal)
		})
	case constants.SortByPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price.Decimal)
		})
	case constants.SortByAuthor:
		collator := collate.New(language.Spanish)
		sort.SliceStable(products, func(i, j int) bool {
			return collator.CompareString(products[i].Author, products[j].Author) < 0
		})
	default:
		collator := collate.New(language.Spanish)
		sort.SliceStable(products, func(i, j int) bool {
			return collator.CompareString(products[i].Title, products[j].Title) < 0
		})
	}
}

func paginate(products []models.Product, page, pageSize int) CatalogPage {
	if pageSize <= 0 {
		pageSize = constants.CatalogPageSize
	}
	total := len(products)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	items := make([]models.Product, end-start)
	copy(items, products[start:end])
	return CatalogPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// CatalogView 目录视图状态，任一条件变化都会回到第 1 页
type CatalogView struct {
	Criteria CatalogCriteria
	Page     int
	PageSize int
}

// NewCatalogView 创建目录视图
func NewCatalogView(pageSize int) *CatalogView {
	if pageSize <= 0 {
		pageSize = constants.CatalogPageSize
	}
	return &CatalogView{Page: 1, PageSize: pageSize, Criteria: CatalogCriteria{Sort: constants.SortByTitle}}
}

// SetSearch 设置搜索词
func (v *CatalogView) SetSearch(search string) {
	v.Criteria.Search = search
	v.Page = 1
}

// ToggleImprint 切换出版社选择
func (v *CatalogView) ToggleImprint(imprint string) {
	for i, selected := range v.Criteria.Imprints {
		if selected == imprint {
			v.Criteria.Imprints = append(v.Criteria.Imprints[:i], v.Criteria.Imprints[i+1:]...)
			v.Page = 1
			return
		}
	}
	v.Criteria.Imprints = append(v.Criteria.Imprints, imprint)
	v.Page = 1
}

// SetOnlyNew 设置仅看新书
func (v *CatalogView) SetOnlyNew(onlyNew bool) {
	v.Criteria.OnlyNew = onlyNew
	v.Page = 1
}

// SetSort 设置排序方式
func (v *CatalogView) SetSort(sortBy string) {
	v.Criteria.Sort = sortBy
	v.Page = 1
}

// ClearFilters 清除全部条件
func (v *CatalogView) ClearFilters() {
	v.Criteria = CatalogCriteria{Sort: constants.SortByTitle}
	v.Page = 1
}

// SetPage 翻页
func (v *CatalogView) SetPage(page int) {
	v.Page = page
}

// Apply 对商品集合执行当前视图的查询
func (v *CatalogView) Apply(products []models.Product) CatalogPage {
	result := ApplyCatalogQuery(products, v.Criteria, v.Page, v.PageSize)
	v.Page = result.Page
	return result
}
