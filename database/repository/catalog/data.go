package catalog

import "photostudio/models"

// Reference data for the studio catalog. Prices are whole INR.

var categories = []models.Category{
	{ID: models.CategoryWedding, Label: "Wedding Photography", Icon: "💍"},
	{ID: models.CategoryBabyShower, Label: "Baby Shower Photography", Icon: "👶"},
	{ID: models.CategoryProduct, Label: "Product Photography", Icon: "📸"},
	{ID: models.CategoryPortrait, Label: "Portrait Photoshoots", Icon: "🧑"},
	{ID: models.CategoryEvent, Label: "Event Coverage", Icon: "🎉"},
	{ID: models.CategoryCommercial, Label: "Commercial & Branding", Icon: "🏢", HasMonthlyOption: true},
}

var packages = []models.Package{
	{
		ID:           "wedding-basic",
		Category:     models.CategoryWedding,
		Name:         "Basic",
		Price:        49999,
		Description:  "Perfect for intimate weddings",
		Duration:     "6 Hours",
		EditedPhotos: 200,
		DeliveryTime: "14 Days",
		Features: []string{
			"6-Hour Photography Coverage",
			"200 Edited Photos",
			"1 Photographer",
			"Online Gallery",
			"Basic Retouching",
			"Digital Downloads",
		},
	},
	{
		ID:           "wedding-premium",
		Category:     models.CategoryWedding,
		Name:         "Premium",
		Price:        89999,
		Description:  "Ideal for traditional weddings",
		Duration:     "10 Hours",
		EditedPhotos: 400,
		DeliveryTime: "10 Days",
		Popular:      true,
		Discount:     "10% OFF",
		Features: []string{
			"10-Hour Photo & Video Coverage",
			"400 Edited Photos",
			"10-Minute Highlight Video",
			"2 Photographers",
			"Advanced Retouching",
			"Online Gallery",
			"USB Drive Delivery",
			"Wedding Album (30 Pages)",
		},
	},
	{
		ID:           "wedding-professional",
		Category:     models.CategoryWedding,
		Name:         "Professional",
		Price:        149999,
		Description:  "Complete coverage for your special day",
		Duration:     "Full Day (12+ Hours)",
		EditedPhotos: 600,
		DeliveryTime: "7 Days",
		Features: []string{
			"Full Day Coverage (Pre-wedding to Reception)",
			"600+ Edited Photos",
			"20-Minute Cinematic Film",
			"3 Photographers + 1 Videographer",
			"Drone Aerial Coverage",
			"Premium Retouching",
			"Online Gallery",
			"Luxury Wedding Album (50 Pages)",
			"Engagement Photoshoot Included",
		},
	},
	{
		ID:           "babyshower-basic",
		Category:     models.CategoryBabyShower,
		Name:         "Basic",
		Price:        14999,
		Description:  "Capture the special moments",
		Duration:     "2 Hours",
		EditedPhotos: 75,
		DeliveryTime: "7 Days",
		Features: []string{
			"2-Hour Photography Coverage",
			"75 Edited Photos",
			"1 Photographer",
			"Online Gallery",
			"Basic Retouching",
			"Digital Downloads",
		},
	},
	{
		ID:           "babyshower-premium",
		Category:     models.CategoryBabyShower,
		Name:         "Premium",
		Price:        24999,
		Description:  "Comprehensive coverage of your celebration",
		Duration:     "3 Hours",
		EditedPhotos: 150,
		DeliveryTime: "5 Days",
		Popular:      true,
		Features: []string{
			"3-Hour Photography Coverage",
			"150 Edited Photos",
			"1 Photographer",
			"Online Gallery",
			"Advanced Retouching",
			"Digital Downloads",
			"Photo Album (20 Pages)",
			"5 Printed Photos (8×10)",
		},
	},
	{
		ID:           "babyshower-professional",
		Category:     models.CategoryBabyShower,
		Name:         "Professional",
		Price:        34999,
		Description:  "Premium coverage with video highlights",
		Duration:     "4 Hours",
		EditedPhotos: 200,
		DeliveryTime: "3 Days",
		Features: []string{
			"4-Hour Photo & Video Coverage",
			"200 Edited Photos",
			"5-Minute Highlight Video",
			"2 Photographers",
			"Premium Retouching",
			"Online Gallery",
			"Luxury Photo Album (30 Pages)",
			"10 Printed Photos (8×10)",
			"Same-Day Preview (10 Photos)",
		},
	},
	{
		ID:           "product-basic",
		Category:     models.CategoryProduct,
		Name:         "Basic",
		Price:        9999,
		Description:  "Essential product shots",
		Duration:     "2 Hours",
		EditedPhotos: 10,
		DeliveryTime: "5 Days",
		Features: []string{
			"Up to 10 Products",
			"1 Angle Per Product",
			"White Background",
			"Basic Retouching",
			"Digital Delivery",
			"Commercial Usage Rights",
		},
	},
	{
		ID:           "product-premium",
		Category:     models.CategoryProduct,
		Name:         "Premium",
		Price:        19999,
		Description:  "Multi-angle professional product photography",
		Duration:     "4 Hours",
		EditedPhotos: 30,
		DeliveryTime: "3 Days",
		Popular:      true,
		Features: []string{
			"Up to 15 Products",
			"3 Angles Per Product",
			"Choice of 3 Backgrounds",
			"Advanced Retouching",
			"Digital Delivery",
			"Commercial Usage Rights",
			"Basic Styling",
		},
	},
	{
		ID:           "product-professional",
		Category:     models.CategoryProduct,
		Name:         "Professional",
		Price:        34999,
		Description:  "Complete e-commerce ready product photography",
		Duration:     "Full Day",
		EditedPhotos: 50,
		DeliveryTime: "2 Days",
		Features: []string{
			"Up to 25 Products",
			"5 Angles Per Product",
			"Custom Backgrounds & Setups",
			"Premium Retouching",
			"Digital Delivery",
			"Commercial Usage Rights",
			"Professional Styling",
			"Lifestyle Shots Included",
			"360° Rotating Views",
		},
	},
	{
		ID:           "portrait-basic",
		Category:     models.CategoryPortrait,
		Name:         "Basic",
		Price:        7999,
		Description:  "Perfect for individuals and professionals",
		Duration:     "1 Hour",
		EditedPhotos: 15,
		DeliveryTime: "7 Days",
		Features: []string{
			"1-Hour Session",
			"15 Edited Photos",
			"1 Outfit Change",
			"1 Location",
			"Basic Retouching",
			"Digital Delivery",
			"Personal Usage Rights",
		},
	},
	{
		ID:           "portrait-premium",
		Category:     models.CategoryPortrait,
		Name:         "Premium",
		Price:        14999,
		Description:  "Extended session with more variety",
		Duration:     "2 Hours",
		EditedPhotos: 30,
		DeliveryTime: "5 Days",
		Popular:      true,
		Features: []string{
			"2-Hour Session",
			"30 Edited Photos",
			"3 Outfit Changes",
			"2 Locations",
			"Advanced Retouching",
			"Digital Delivery",
			"Personal Usage Rights",
			"5 Printed Photos (8×10)",
		},
	},
	{
		ID:           "portrait-professional",
		Category:     models.CategoryPortrait,
		Name:         "Professional",
		Price:        24999,
		Description:  "Comprehensive portrait experience",
		Duration:     "3 Hours",
		EditedPhotos: 50,
		DeliveryTime: "3 Days",
		Features: []string{
			"3-Hour Session",
			"50 Edited Photos",
			"Unlimited Outfit Changes",
			"3 Locations",
			"Premium Retouching",
			"Digital Delivery",
			"Commercial Usage Rights",
			"Hair & Makeup Artist Included",
			"10 Printed Photos (8×10)",
			"Photo Album (20 Pages)",
		},
	},
	{
		ID:           "event-basic",
		Category:     models.CategoryEvent,
		Name:         "Basic",
		Price:        19999,
		Description:  "Essential event documentation",
		Duration:     "3 Hours",
		EditedPhotos: 100,
		DeliveryTime: "7 Days",
		Features: []string{
			"3-Hour Coverage",
			"100 Edited Photos",
			"1 Photographer",
			"Online Gallery",
			"Basic Retouching",
			"Digital Delivery",
		},
	},
	{
		ID:           "event-premium",
		Category:     models.CategoryEvent,
		Name:         "Premium",
		Price:        34999,
		Description:  "Comprehensive event coverage",
		Duration:     "5 Hours",
		EditedPhotos: 200,
		DeliveryTime: "5 Days",
		Popular:      true,
		Features: []string{
			"5-Hour Coverage",
			"200 Edited Photos",
			"2 Photographers",
			"Online Gallery",
			"Advanced Retouching",
			"Digital Delivery",
			"5-Minute Highlight Reel",
			"Event Photo Album (20 Pages)",
		},
	},
	{
		ID:           "event-professional",
		Category:     models.CategoryEvent,
		Name:         "Professional",
		Price:        59999,
		Description:  "Premium coverage for important events",
		Duration:     "8 Hours",
		EditedPhotos: 300,
		DeliveryTime: "3 Days",
		Features: []string{
			"8-Hour Coverage",
			"300 Edited Photos",
			"2 Photographers + 1 Videographer",
			"Online Gallery",
			"Premium Retouching",
			"Digital Delivery",
			"10-Minute Highlight Video",
			"Drone Aerial Coverage",
			"Luxury Event Album (30 Pages)",
			"Same-Day Preview (20 Photos)",
		},
	},
	{
		ID:           "commercial-basic",
		Category:     models.CategoryCommercial,
		Name:         "Basic",
		Price:        24999,
		Description:  "Essential branding photography",
		Duration:     "Half Day (4 Hours)",
		EditedPhotos: 30,
		DeliveryTime: "7 Days",
		Features: []string{
			"Half-Day Shoot (4 Hours)",
			"30 Edited Photos",
			"1 Location",
			"Basic Styling",
			"Commercial Usage Rights",
			"Digital Delivery",
			"Basic Retouching",
		},
	},
	{
		ID:           "commercial-premium",
		Category:     models.CategoryCommercial,
		Name:         "Premium",
		Price:        49999,
		Description:  "Comprehensive branding package",
		Duration:     "Full Day (8 Hours)",
		EditedPhotos: 60,
		DeliveryTime: "5 Days",
		Popular:      true,
		Features: []string{
			"Full-Day Shoot (8 Hours)",
			"60 Edited Photos",
			"2 Locations",
			"Professional Styling",
			"Commercial Usage Rights",
			"Digital Delivery",
			"Advanced Retouching",
			"Social Media Optimized Images",
			"Basic Video Clips",
		},
	},
	{
		ID:           "commercial-professional",
		Category:     models.CategoryCommercial,
		Name:         "Professional",
		Price:        99999,
		Description:  "Premium commercial photography solution",
		Duration:     "2 Full Days",
		EditedPhotos: 100,
		DeliveryTime: "3 Days",
		Features: []string{
			"2 Full-Day Shoots",
			"100 Edited Photos",
			"Multiple Locations",
			"Professional Styling & Art Direction",
			"Commercial Usage Rights",
			"Digital Delivery",
			"Premium Retouching",
			"Social Media Campaign Package",
			"2-Minute Brand Video",
			"Drone Aerial Coverage",
			"Print-Ready Files",
		},
	},
}

var addOns = []models.AddOn{
	{
		ID:    "drone",
		Name:  "Drone Photography",
		Price: 9999,
		Categories: []models.CategoryID{
			models.CategoryWedding, models.CategoryEvent, models.CategoryCommercial,
		},
	},
	{
		ID:    "extra-hour",
		Name:  "Extra Hour Coverage",
		Price: 4999,
		Categories: []models.CategoryID{
			models.CategoryWedding, models.CategoryBabyShower, models.CategoryEvent,
			models.CategoryPortrait, models.CategoryProduct, models.CategoryCommercial,
		},
	},
	{
		ID:    "rush",
		Name:  "Rush Delivery (24 Hours)",
		Price: 3999,
		Categories: []models.CategoryID{
			models.CategoryWedding, models.CategoryBabyShower, models.CategoryEvent,
			models.CategoryPortrait, models.CategoryProduct, models.CategoryCommercial,
		},
	},
	{
		ID:    "raw",
		Name:  "Raw Files",
		Price: 2999,
		Categories: []models.CategoryID{
			models.CategoryWedding, models.CategoryBabyShower, models.CategoryEvent,
			models.CategoryPortrait, models.CategoryProduct, models.CategoryCommercial,
		},
	},
	{
		ID:    "prints",
		Name:  "Premium Prints Package",
		Price: 4999,
		Categories: []models.CategoryID{
			models.CategoryWedding, models.CategoryBabyShower, models.CategoryPortrait,
		},
	},
	{
		ID:    "second-shooter",
		Name:  "Additional Photographer",
		Price: 7999,
		Categories: []models.CategoryID{
			models.CategoryWedding, models.CategoryBabyShower, models.CategoryEvent,
			models.CategoryCommercial,
		},
	},
	{
		ID:    "makeup",
		Name:  "Hair & Makeup Artist",
		Price: 5999,
		Categories: []models.CategoryID{
			models.CategoryWedding, models.CategoryPortrait, models.CategoryCommercial,
		},
	},
	{
		ID:    "album",
		Name:  "Additional Photo Album",
		Price: 6999,
		Categories: []models.CategoryID{
			models.CategoryWedding, models.CategoryBabyShower, models.CategoryEvent,
			models.CategoryPortrait,
		},
	},
	{
		ID:    "social",
		Name:  "Social Media Optimization",
		Price: 3999,
		Categories: []models.CategoryID{
			models.CategoryProduct, models.CategoryCommercial,
		},
	},
	{
		ID:    "location",
		Name:  "Additional Location",
		Price: 4999,
		Categories: []models.CategoryID{
			models.CategoryPortrait, models.CategoryProduct, models.CategoryCommercial,
		},
	},
}

var cities = []models.City{
	{ID: "mumbai", Name: "Mumbai", Available: true},
	{ID: "delhi", Name: "Delhi", Available: true},
	{ID: "bangalore", Name: "Bangalore", Available: true},
	{ID: "hyderabad", Name: "Hyderabad", Available: true},
	{ID: "chennai", Name: "Chennai", Available: true},
	{
		ID: "kolkata", Name: "Kolkata", Available: false,
		AlternativeMessage: "We'll be launching in Kolkata next month. Please check back soon!",
	},
	{ID: "pune", Name: "Pune", Available: true},
	{
		ID: "ahmedabad", Name: "Ahmedabad", Available: false,
		AlternativeMessage: "Our services in Ahmedabad will be available from next quarter. Please contact us for special arrangements.",
	},
	{ID: "jaipur", Name: "Jaipur", Available: true},
	{
		ID: "lucknow", Name: "Lucknow", Available: false,
		AlternativeMessage: "We currently don't have photographers in Lucknow. Please consider our services in Delhi or Jaipur.",
	},
	{ID: "chandigarh", Name: "Chandigarh", Available: true},
	{ID: "kochi", Name: "Kochi", Available: true},
	{ID: "goa", Name: "Goa", Available: true},
	{
		ID: "indore", Name: "Indore", Available: false,
		AlternativeMessage: "We're expanding to Indore soon. Please check back in a few weeks.",
	},
	{
		ID: "bhopal", Name: "Bhopal", Available: false,
		AlternativeMessage: "Our services in Bhopal will be available soon. Please contact us for special arrangements.",
	},
	{
		ID: "nagpur", Name: "Nagpur", Available: false,
		AlternativeMessage: "We don't currently serve Nagpur. Please consider our services in Pune or Mumbai.",
	},
	{ID: "surat", Name: "Surat", Available: true},
	{ID: "vadodara", Name: "Vadodara", Available: true},
	{
		ID: "patna", Name: "Patna", Available: false,
		AlternativeMessage: "We're not currently available in Patna. Please check back later.",
	},
	{
		ID: "bhubaneswar", Name: "Bhubaneswar", Available: false,
		AlternativeMessage: "We'll be launching in Bhubaneswar soon. Please contact us for more information.",
	},
}

var timeSlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
	"6:00 PM",
	"7:00 PM",
	"8:00 PM",
}
