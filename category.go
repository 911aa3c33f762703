package metasearch

// Category is the editorial bucket a result is classified into.
type Category int

// Categories in priority order. The order is significant: classification
// assigns a result to the first category whose domains it matches, and
// selection emits categories in this order.
const (
	CategoryEncyclopedia Category = iota + 1
	CategoryFamousNewsAgency
	CategoryOnlineNewsAgency
	CategoryPortalsOrBlogs
)

// Categories lists every category in enumeration order.
var Categories = []Category{
	CategoryEncyclopedia,
	CategoryFamousNewsAgency,
	CategoryOnlineNewsAgency,
	CategoryPortalsOrBlogs,
}

var categoryNames = map[Category]string{
	CategoryEncyclopedia:     "Encyclopedia",
	CategoryFamousNewsAgency: "Famous News Agency",
	CategoryOnlineNewsAgency: "Online News Agency",
	CategoryPortalsOrBlogs:   "Portals and Blogs",
}

// String returns the human-readable category name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Classified associates a result with the category it was classified into.
type Classified struct {
	Category Category
	Result   *Result
}

// GroupByCategory partitions classified results by category.
// Every category is present in the returned map, empty if nothing matched it.
// Input order is preserved within each category.
func GroupByCategory(classified []Classified) map[Category][]*Result {
	grouped := make(map[Category][]*Result, len(Categories))
	for _, c := range Categories {
		grouped[c] = []*Result{}
	}
	for _, c := range classified {
		grouped[c.Category] = append(grouped[c.Category], c.Result)
	}
	return grouped
}
