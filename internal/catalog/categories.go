package catalog

// AllCategories is the table key meaning "no category filter".
const AllCategories = "전체"

type category struct {
	name string
	id   int
}

// categories maps display names to Aladin CategoryId values, in display order.
var categories = []category{
	{AllCategories, 0},
	{"소설/시/희곡", 1},
	{"경제경영", 170},
	{"자기계발", 336},
	{"인문학", 656},
	{"역사", 74},
	{"사회과학", 798},
	{"과학", 987},
	{"컴퓨터/IT", 351},
	{"예술/대중문화", 517},
	{"외국어", 1322},
	{"대학교재", 8257},
	{"수험서/자격증", 2156},
	{"취미/건강", 55890},
	{"여행", 1196},
	{"요리", 53471},
}

// Categories returns the category names in display order.
func Categories() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.name
	}
	return names
}

// CategoryID resolves a category name. Unknown names resolve to 0 (all categories).
func CategoryID(name string) int {
	for _, c := range categories {
		if c.name == name {
			return c.id
		}
	}
	return 0
}
