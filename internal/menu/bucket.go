package menu

import "tiffinwala/internal/catalog"

// Bucket is a named compartment of a dabba menu. Each bucket only accepts
// a fixed subset of item categories.
type Bucket string

const (
	BucketMain  Bucket = "main"
	BucketSide  Bucket = "side"
	BucketExtra Bucket = "extra"
)

var bucketCategories = map[Bucket][]catalog.Category{
	BucketMain: {
		catalog.CategoryDal,
		catalog.CategorySabzi,
		catalog.CategoryRiceItem,
		catalog.CategoryNonVeg,
	},
	BucketSide: {
		catalog.CategoryRotiBread,
		catalog.CategoryRaitaSalad,
	},
	BucketExtra: {
		catalog.CategorySweet,
		catalog.CategoryDrink,
		catalog.CategoryPicklePapad,
	},
}

func (b Bucket) Allows(c catalog.Category) bool {
	for _, allowed := range bucketCategories[b] {
		if allowed == c {
			return true
		}
	}
	return false
}

// Selection carries the item ids a vendor picked per bucket, matching the
// request body shape.
type Selection struct {
	MainItems []int `json:"main_items"`
	SideItems []int `json:"side_items"`
	Extras    []int `json:"extras"`
}

func (s Selection) buckets() map[Bucket][]int {
	return map[Bucket][]int{
		BucketMain:  s.MainItems,
		BucketSide:  s.SideItems,
		BucketExtra: s.Extras,
	}
}
