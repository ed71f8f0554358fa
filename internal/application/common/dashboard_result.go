package common

type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type PopularRecipe struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Views int    `json:"views"`
}

type DashboardResult struct {
	TotalRecipes       int             `json:"totalRecipes"`
	AverageRating      float64         `json:"avgRating"`
	TotalViews         int             `json:"totalViews"`
	TopCategory        string          `json:"topCategory"`
	Categories         []CategoryCount `json:"categories"`
	RatingDistribution []CategoryCount `json:"ratingDistribution"`
	PopularRecipes     []PopularRecipe `json:"popularRecipes"`
	AverageCookTime    int             `json:"avgCookTime"`
}
