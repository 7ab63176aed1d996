package theme

// CurrentVersion is stamped on the default document.
const CurrentVersion = 1.0

// Defaults returns a fresh copy of the complete default document.
func Defaults() Config {
	return Config(defaultTree())
}

// defaultTree builds the default document. Numbers are float64 so the
// tree compares equal to anything that went through encoding/json.
func defaultTree() map[string]interface{} {
	return map[string]interface{}{
		KeyVersion: CurrentVersion,
		KeyGlobal: map[string]interface{}{
			"colors": map[string]interface{}{
				"background": "#FFF9FB",
				"text":       "#2D1B24",
				"primary":    "#C2185B",
				"secondary":  "#F8BBD0",
				"accent":     "#FFD54F",
				"muted":      "#8D6E7B",
			},
			"typography": map[string]interface{}{
				"headingFont":   "Playfair Display",
				"bodyFont":      "Inter",
				"baseSize":      "16px",
				"headingWeight": "700",
				"bodyWeight":    "400",
				"lineHeight":    "1.6",
				"letterSpacing": "0",
			},
			"spacing": map[string]interface{}{
				"sectionPadding": "4rem",
				"containerWidth": "1200px",
				"gap":            "1.5rem",
				"borderRadius":   "12px",
			},
			"animations": map[string]interface{}{
				"enabled":    true,
				"duration":   "300ms",
				"easing":     "ease-out",
				"hoverScale": "1.03",
				"reveal":     "fade-up",
			},
			"hero": map[string]interface{}{
				"backgroundColor": "#FCE4EC",
				"textColor":       "#2D1B24",
				"overlayColor":    "#000000",
				"overlayOpacity":  0.25,
				"height":          "70vh",
				"alignment":       "center",
			},
			"cards": map[string]interface{}{
				"backgroundColor": "#FFFFFF",
				"textColor":       "#2D1B24",
				"borderColor":     "#F3D1DC",
				"shadow":          "md",
				"imageRatio":      "4/5",
			},
			"buttons": map[string]interface{}{
				"backgroundColor": "#C2185B",
				"textColor":       "#FFFFFF",
				"hoverColor":      "#AD1457",
				"radius":          "9999px",
				"style":           "solid",
			},
			"footer": map[string]interface{}{
				"backgroundColor": "#2D1B24",
				"textColor":       "#FCE4EC",
				"linkColor":       "#F8BBD0",
				"showSocial":      true,
			},
		},
		KeyHomeContent: map[string]interface{}{
			"hero": map[string]interface{}{
				"title":    "Welcome to our boutique",
				"subtitle": "Discover pieces picked with care",
				"ctaText":  "Shop now",
				"ctaLink":  "/products",
				"imageUrl": "",
			},
			"featured": map[string]interface{}{
				"title":        "Featured products",
				"subtitle":     "Our current favourites",
				"productLimit": 8.0,
				"visible":      true,
			},
			"categories": map[string]interface{}{
				"title":   "Shop by category",
				"visible": true,
			},
			"testimonials": map[string]interface{}{
				"title":   "What our customers say",
				"visible": true,
				"items": []interface{}{
					map[string]interface{}{"author": "Sarah", "text": "Beautiful quality and fast delivery."},
					map[string]interface{}{"author": "Yasmine", "text": "My new favourite shop."},
				},
			},
			"newsletter": map[string]interface{}{
				"title":      "Stay in touch",
				"subtitle":   "News and offers, once a month",
				"buttonText": "Subscribe",
				"visible":    true,
			},
		},
		KeyAboutPageContent: map[string]interface{}{
			"hero": map[string]interface{}{
				"title":    "About us",
				"subtitle": "A small team with a big passion",
			},
			"story": map[string]interface{}{
				"title": "Our story",
				"body":  "We started with a simple idea: beautiful things should be easy to find.",
			},
			"team": map[string]interface{}{
				"title":   "Meet the team",
				"members": []interface{}{},
			},
		},
		KeyContactPageContent: map[string]interface{}{
			"title":    "Contact us",
			"subtitle": "We answer within 24 hours",
			"email":    "",
			"phone":    "",
			"address":  "",
			"showMap":  false,
			"showForm": true,
		},
		KeyFaqPageContent: map[string]interface{}{
			"title":    "Frequently asked questions",
			"subtitle": "Everything you need to know",
			"items": []interface{}{
				map[string]interface{}{
					"question": "How long does delivery take?",
					"answer":   "Orders ship within 2 business days.",
				},
				map[string]interface{}{
					"question": "Can I return an item?",
					"answer":   "Yes, within 14 days of delivery.",
				},
			},
		},
		KeyElementOverrides: map[string]interface{}{},
	}
}
