package specials

import "github.com/m04kA/LittleLemon-ReservationService/internal/domain"

var staticCatalog = []domain.SpecialItem{
	{
		ID:       1,
		Name:     "Greek Salad",
		Price:    12.99,
		Rating:   4.9,
		PrepTime: "15-20 min",
		Image:    "/images/greek-salad.jpg",
		Description: "The famous Greek salad of crispy lettuce, peppers, olives and our Chicago style feta cheese, " +
			"garnished with crunchy garlic and rosemary croutons.",
	},
	{
		ID:       2,
		Name:     "Bruschetta",
		Price:    5.99,
		Rating:   4.8,
		PrepTime: "10-15 min",
		Image:    "/images/restaurant-food.jpg",
		Description: "Our Bruschetta is made from grilled bread that has been smeared with garlic and seasoned " +
			"with salt and olive oil. Topped with fresh tomatoes and basil.",
	},
	{
		ID:       3,
		Name:     "Lemon Dessert",
		Price:    5.00,
		Rating:   5.0,
		PrepTime: "5-10 min",
		Image:    "/images/lemon-dessert.jpg",
		Description: "This comes straight from grandma's recipe book, every last ingredient has been sourced " +
			"and is as authentic as can be imagined. A perfect end to your meal.",
	},
}

// StaticCatalog возвращает копию встроенного каталога из трех блюд
func StaticCatalog() []domain.SpecialItem {
	items := make([]domain.SpecialItem, len(staticCatalog))
	copy(items, staticCatalog)
	return items
}
