package store

import "urban-bites/internal/model"

// Built-in defaults used when a slot is absent, corrupt, or cleared. Each
// function returns a fresh value so callers can never mutate the seeds.

func defaultBusinessInfo() model.BusinessInfo {
	return model.BusinessInfo{
		Name:         "Urban Bites Café",
		Address:      "Shop No. 12, Ground Floor, City Center Plaza, MG Road, Bengaluru",
		Phone:        "+91 98765 43210",
		Email:        "hello@urbanbites.in",
		OpeningHours: "Mon – Sun, 11:00 AM – 11:00 PM",
		Tagline:      "Fresh • Fast • Affordable",
		Socials: model.Socials{
			Instagram: "https://instagram.com/urbanbitescafe",
			Facebook:  "https://facebook.com/urbanbitescafe",
			Twitter:   "https://x.com/urbanbitescafe",
		},
	}
}

func defaultHomepageConfig() model.HomepageConfig {
	return model.HomepageConfig{
		Hero: model.Hero{
			Badge:       "OPEN FOR DELIVERY & DINE-IN",
			Headline:    "Satisfy Your <br /> <span class='text-transparent bg-clip-text bg-gradient-to-r from-orange-500 to-red-600'>Cravings</span> Instantly.",
			Subheadline: "Experience the crunch, the spice, and the freshness. Urban Bites brings you gourmet fast food that feels like home.",
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?q=80&w=1000&auto=format&fit=crop",
		},
		Sections: model.Sections{
			Features:     true,
			Popular:      true,
			Promo:        true,
			Testimonials: true,
			CTA:          true,
		},
		Promo: model.Promo{
			Title:       "Super Family <br /><span class='text-orange-500'>Combo Deal</span>",
			Subtitle:    "Limited Time Offer",
			Description: "Get 2 Urban Legend Burgers, 2 Large Peri-Peri Fries, and 2 Thick Shakes for just ₹599. Perfect for weekend binges.",
		},
	}
}

func defaultMenu() []model.MenuItem {
	return []model.MenuItem{
		{
			ID:          "1",
			Name:        "Urban Legend Burger",
			Description: "Double patty, melted cheese, caramelized onions, and our secret sauce.",
			Price:       249,
			Category:    model.CategoryBurgers,
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			ID:          "6",
			Name:        "Classic Chicken Burger",
			Description: "Juicy chicken patty with lettuce, tomato and mayo.",
			Price:       199,
			Category:    model.CategoryBurgers,
			Image:       "https://images.unsplash.com/photo-1521305916504-4a1121188589?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
		},
		{
			ID:          "11",
			Name:        "BBQ Bacon Smash",
			Description: "Smashed beef patty, crispy bacon, cheddar, onion rings, and smokey BBQ sauce.",
			Price:       279,
			Category:    model.CategoryBurgers,
			Image:       "https://images.unsplash.com/photo-1596662951482-0c4ba74a6df6?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			ID:          "2",
			Name:        "Spicy Paneer Wrap",
			Description: "Crispy paneer strips tossed in schezwan sauce wrapped in a tortilla.",
			Price:       189,
			Category:    model.CategoryWraps,
			Image:       "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			ID:          "7",
			Name:        "Grilled Chicken Tikka Wrap",
			Description: "Smoky chicken tikka chunks with mint chutney and fresh onions.",
			Price:       219,
			Category:    model.CategoryWraps,
			Image:       "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
		},
		{
			ID:          "12",
			Name:        "Mediterranean Falafel Wrap",
			Description: "Crunchy falafel, hummus, pickled veggies, and tahini sauce in a soft pita.",
			Price:       199,
			Category:    model.CategoryWraps,
			Image:       "https://images.unsplash.com/photo-1626074353765-517a681e40be?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
		},
		{
			ID:          "3",
			Name:        "Peri-Peri Fries",
			Description: "Golden crispy fries dusted with spicy peri-peri seasoning.",
			Price:       129,
			Category:    model.CategoryFries,
			Image:       "https://images.unsplash.com/photo-1541592106381-b31e9677c0e5?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
		},
		{
			ID:          "8",
			Name:        "Cheesy Loaded Fries",
			Description: "Crispy fries topped with liquid cheese, jalapeños, and herbs.",
			Price:       169,
			Category:    model.CategoryFries,
			Image:       "https://images.unsplash.com/photo-1585109649139-366815a0d713?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			ID:          "13",
			Name:        "Sweet Potato Fries",
			Description: "Hand-cut sweet potatoes fried to perfection, served with chipotle mayo.",
			Price:       149,
			Category:    model.CategoryFries,
			Image:       "https://images.unsplash.com/photo-1534938665420-4193effeacc4?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			ID:          "4",
			Name:        "Chocolate Oreo Shake",
			Description: "Thick, creamy chocolate shake blended with crunchy Oreo bits.",
			Price:       169,
			Category:    model.CategoryShakes,
			Image:       "https://images.unsplash.com/photo-1572490122747-3968b75cc699?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			ID:          "9",
			Name:        "Strawberry Bliss Shake",
			Description: "Fresh strawberries blended with vanilla ice cream and chilled milk.",
			Price:       159,
			Category:    model.CategoryShakes,
			Image:       "https://images.unsplash.com/photo-1553177595-4de2bb0842b9?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
		},
		{
			ID:          "14",
			Name:        "Salted Caramel Pretzel Shake",
			Description: "Vanilla bean ice cream blended with salted caramel sauce and crushed pretzels.",
			Price:       179,
			Category:    model.CategoryShakes,
			Image:       "https://images.unsplash.com/photo-1579954115545-a95591f28bfc?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
		},
		{
			ID:          "5",
			Name:        "Family Combo Meal",
			Description: "2 Burgers, 2 Fries, and 2 Cokes. Perfect for sharing.",
			Price:       599,
			Category:    model.CategoryCombos,
			Image:       "https://images.unsplash.com/photo-1594212699903-ec8a3eca50f5?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
		},
		{
			ID:          "10",
			Name:        "Solo Feast",
			Description: "Any Classic Burger + One Milkshake of your choice.",
			Price:       329,
			Category:    model.CategoryCombos,
			Image:       "https://images.unsplash.com/photo-1551782450-a2132b4ba21d?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			ID:          "15",
			Name:        "Date Night Special",
			Description: "2 Gourmet Burgers, 1 Large Fries to share, and 2 Red Velvet Shakes.",
			Price:       799,
			Category:    model.CategoryCombos,
			Image:       "https://images.unsplash.com/photo-1610614819513-58e34989848b?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   true,
		},
	}
}

func defaultTestimonials() []model.Testimonial {
	return []model.Testimonial{
		{
			ID:      "1",
			Name:    "Priya Sharma",
			Role:    "Foodie",
			Content: "The Urban Legend Burger is hands down the best burger I've had in Bangalore! Super juicy and fresh.",
			Rating:  5,
			Image:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=200&q=80",
		},
		{
			ID:      "2",
			Name:    "Rahul Verma",
			Role:    "Student",
			Content: "Great place for a quick bite with friends. Affordable prices and the peri-peri fries are addictive!",
			Rating:  5,
			Image:   "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=200&q=80",
		},
		{
			ID:      "3",
			Name:    "Sneha Kapoor",
			Role:    "Corporate Professional",
			Content: "Lunch breaks are a joy now. The service is incredibly fast, and the wraps are healthy and delicious.",
			Rating:  5,
			Image:   "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&w=200&q=80",
		},
		{
			ID:      "4",
			Name:    "Arjun Mehta",
			Role:    "Local Guide",
			Content: "The Family Combo is a total steal! Best value for money in the city. Highly recommended for weekend treats.",
			Rating:  4,
			Image:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=200&q=80",
		},
	}
}

func defaultBlogPosts() []model.BlogPost {
	return []model.BlogPost{
		{
			ID:      "1",
			Title:   "The Secret Behind Our Buns",
			Excerpt: "Why we bake fresh every morning to ensure the perfect bite.",
			Date:    "Oct 12, 2023",
			Image:   "https://images.unsplash.com/photo-1509440159596-0249088772ff?auto=format&fit=crop&w=800&q=80",
			Content: "Full content here...",
		},
		{
			ID:      "2",
			Title:   "5 New Combos for Students",
			Excerpt: "Check out our budget-friendly meals designed for college breaks.",
			Date:    "Nov 01, 2023",
			Image:   "https://images.unsplash.com/photo-1529692236671-f1f6cf9683ba?auto=format&fit=crop&w=800&q=80",
			Content: "Full content here...",
		},
		{
			ID:      "3",
			Title:   "The Art of the Perfect Fry",
			Excerpt: "Crispy, golden, and seasoned to perfection. Discover the secret behind our signature fries.",
			Date:    "Dec 15, 2023",
			Image:   "https://images.unsplash.com/photo-1598514983318-2f64f8f4796c?q=80&w=800&auto=format&fit=crop",
			Content: "Full content here...",
		},
	}
}
