package services

import (
	"github.com/Ayewealth/coursehub/models"
	"github.com/google/uuid"
)

// CartCourse is the course summary embedded in cart and watchlist payloads.
type CartCourse struct {
	ID              uuid.UUID `json:"id"`
	Image           *string   `json:"image"`
	Title           string    `json:"title"`
	Instructor      string    `json:"instructor"`
	DurationInHours uint      `json:"duration_in_hours"`
	Price           float64   `json:"price"`
}

// CartLine is one aggregated entry of a cart: a distinct course plus how
// many times it was added.
type CartLine struct {
	Course   CartCourse `json:"course"`
	Quantity int        `json:"quantity"`
}

func NewCartCourse(course models.Course) CartCourse {
	instructor := ""
	if course.Instructor.Name != nil {
		instructor = *course.Instructor.Name
	}
	return CartCourse{
		ID:              course.ID,
		Image:           course.Image,
		Title:           course.Title,
		Instructor:      instructor,
		DurationInHours: course.DurationInHours,
		Price:           course.Price,
	}
}

// AggregateCart collapses raw cart rows (one per add action, no quantity
// column) into per-course lines and an order total. Items must be loaded
// with their Course (and its Instructor) preloaded.
//
// Lines come out in the order each course was first seen; a plain map alone
// would not hold that order, so the keys are tracked in a separate slice.
// The total is the sum of every raw row's course price, which equals
// unit price times quantity summed over the distinct courses.
func AggregateCart(items []models.CartItem) ([]CartLine, float64) {
	quantities := make(map[uuid.UUID]int, len(items))
	courses := make(map[uuid.UUID]models.Course, len(items))
	order := make([]uuid.UUID, 0, len(items))

	var total float64
	for _, item := range items {
		if _, seen := quantities[item.CourseID]; !seen {
			order = append(order, item.CourseID)
			courses[item.CourseID] = item.Course
		}
		quantities[item.CourseID]++
		total += item.Course.Price
	}

	lines := make([]CartLine, 0, len(order))
	for _, courseID := range order {
		lines = append(lines, CartLine{
			Course:   NewCartCourse(courses[courseID]),
			Quantity: quantities[courseID],
		})
	}

	return lines, total
}
