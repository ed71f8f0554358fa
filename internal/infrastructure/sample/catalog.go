package sample

import (
	"time"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

// Recipes returns a fresh copy of the built-in catalog. CreatedAt is spread
// back from now so the default newest-first order is the listing order.
func Recipes() []*entities.Recipe {
	now := time.Now()
	day := 24 * time.Hour
	raw := []entities.Recipe{
		{
			Id:          "1",
			Name:        "Classic Margherita Pizza",
			Description: "Crisp thin crust topped with San Marzano tomatoes, fresh mozzarella and basil.",
			Category:    "Italian",
			CookTime:    25,
			Servings:    4,
			Difficulty:  entities.DifficultyMedium,
			Ingredients: []string{"500g pizza dough", "200g San Marzano tomatoes", "250g fresh mozzarella", "Fresh basil leaves", "2 tbsp olive oil", "Salt"},
			Instructions: []string{
				"Preheat the oven to 250C with a pizza stone inside.",
				"Stretch the dough into a thin round.",
				"Spread crushed tomatoes and season with salt.",
				"Top with torn mozzarella and drizzle with olive oil.",
				"Bake for 8-10 minutes and finish with basil.",
			},
			Tags:      []string{"vegetarian", "pizza", "classic"},
			Nutrition: entities.Nutrition{Calories: 285, Protein: 12, Carbs: 36, Fat: 10},
			Rating:    4.8,
			Reviews:   124,
			Views:     1520,
		},
		{
			Id:          "2",
			Name:        "Chicken Tikka Masala",
			Description: "Tender marinated chicken in a creamy spiced tomato sauce.",
			Category:    "Indian",
			CookTime:    45,
			Servings:    4,
			Difficulty:  entities.DifficultyMedium,
			Ingredients: []string{"600g chicken thighs", "200g plain yogurt", "2 tbsp garam masala", "400g crushed tomatoes", "200ml heavy cream", "1 onion", "3 garlic cloves"},
			Instructions: []string{
				"Marinate the chicken in yogurt and spices for an hour.",
				"Grill the chicken until charred.",
				"Cook onion and garlic, then add tomatoes and spices.",
				"Stir in cream and the grilled chicken and simmer 15 minutes.",
			},
			Tags:      []string{"spicy", "curry", "chicken"},
			Nutrition: entities.Nutrition{Calories: 490, Protein: 38, Carbs: 14, Fat: 30},
			Rating:    4.9,
			Reviews:   210,
			Views:     2340,
		},
		{
			Id:          "3",
			Name:        "Greek Salad",
			Description: "Cucumber, tomato, olives and feta with a bright oregano dressing.",
			Category:    "Salads",
			CookTime:    15,
			Servings:    2,
			Difficulty:  entities.DifficultyEasy,
			Ingredients: []string{"2 tomatoes", "1 cucumber", "1/2 red onion", "100g feta cheese", "Kalamata olives", "3 tbsp olive oil", "1 tsp dried oregano"},
			Instructions: []string{
				"Chop the vegetables into bite-sized pieces.",
				"Add olives and a slab of feta.",
				"Dress with olive oil and oregano.",
			},
			Tags:      []string{"vegetarian", "healthy", "quick"},
			Nutrition: entities.Nutrition{Calories: 210, Protein: 6, Carbs: 9, Fat: 17},
			Rating:    4.5,
			Reviews:   86,
			Views:     980,
		},
		{
			Id:          "4",
			Name:        "Beef Tacos",
			Description: "Seasoned ground beef in warm tortillas with fresh toppings.",
			Category:    "Mexican",
			CookTime:    30,
			Servings:    4,
			Difficulty:  entities.DifficultyEasy,
			Ingredients: []string{"500g ground beef", "8 corn tortillas", "1 tbsp chili powder", "1 tsp cumin", "Shredded lettuce", "1 tomato", "Cheddar cheese"},
			Instructions: []string{
				"Brown the beef with chili powder and cumin.",
				"Warm the tortillas in a dry pan.",
				"Fill with beef and top with lettuce, tomato and cheese.",
			},
			Tags:      []string{"quick", "family", "beef"},
			Nutrition: entities.Nutrition{Calories: 420, Protein: 28, Carbs: 30, Fat: 21},
			Rating:    4.6,
			Reviews:   150,
			Views:     1875,
		},
		{
			Id:          "5",
			Name:        "Vegetable Stir Fry",
			Description: "Crunchy seasonal vegetables tossed in a ginger soy glaze.",
			Category:    "Asian",
			CookTime:    20,
			Servings:    3,
			Difficulty:  entities.DifficultyEasy,
			Ingredients: []string{"1 broccoli head", "1 red bell pepper", "2 carrots", "150g snap peas", "3 tbsp soy sauce", "1 tbsp grated ginger", "1 tbsp sesame oil"},
			Instructions: []string{
				"Slice all vegetables thinly.",
				"Stir fry in sesame oil over high heat for 5 minutes.",
				"Add soy sauce and ginger and toss until glossy.",
			},
			Tags:      []string{"vegan", "healthy", "quick"},
			Nutrition: entities.Nutrition{Calories: 180, Protein: 7, Carbs: 24, Fat: 7},
			Rating:    4.4,
			Reviews:   64,
			Views:     760,
		},
		{
			Id:          "6",
			Name:        "Chocolate Lava Cake",
			Description: "Individual chocolate cakes with a molten center.",
			Category:    "Desserts",
			CookTime:    35,
			Servings:    4,
			Difficulty:  entities.DifficultyHard,
			Ingredients: []string{"120g dark chocolate", "100g butter", "2 eggs", "2 egg yolks", "60g sugar", "2 tbsp flour"},
			Instructions: []string{
				"Melt chocolate and butter together.",
				"Whisk eggs, yolks and sugar until pale.",
				"Fold in the chocolate and flour.",
				"Bake in buttered ramekins at 220C for 12 minutes.",
			},
			Tags:      []string{"dessert", "chocolate", "baking"},
			Nutrition: entities.Nutrition{Calories: 520, Protein: 8, Carbs: 42, Fat: 36},
			Rating:    4.9,
			Reviews:   178,
			Views:     2105,
		},
	}

	recipes := make([]*entities.Recipe, 0, len(raw))
	for i, r := range raw {
		r.CreatedAt = now.Add(-time.Duration(i+1) * day)
		r.UpdatedAt = r.CreatedAt
		r.CreatedBy = "admin"
		recipes = append(recipes, entities.NewRecipe(r))
	}
	return recipes
}
