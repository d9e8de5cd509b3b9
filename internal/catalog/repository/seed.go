package repository

import "github.com/velocita/storefront/internal/catalog/domain"

func int64ptr(v int64) *int64 { return &v }

// SeedProducts returns the built-in superbike catalog. It backs the
// in-memory repository and is inserted into Postgres on first start.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:       "ducati-panigale-v4",
			Name:     "Panigale V4",
			Brand:    "Ducati",
			Category: "Sport",
			Price:    2650000,
			Description: "The closest thing to a MotoGP motorcycle for the road, " +
				"with a 214 hp Desmosedici Stradale engine and aerodynamic winglets.",
			Specifications: map[string]string{
				"engine": "1,103cc, V4", "power": "214 hp", "topSpeed": "299+ km/h",
			},
			Colors:   []string{"Ducati Red", "Winter Test Livery", "Black"},
			Featured: true,
			InStock:  true,
		},
		{
			ID:       "bmw-s1000rr",
			Name:     "S 1000 RR",
			Brand:    "BMW",
			Category: "Sport",
			Price:    2065000,
			Specifications: map[string]string{
				"engine": "999cc, inline-4", "power": "207 hp",
			},
			Colors:   []string{"Racing Red", "Light White/Racing Blue", "Black Storm"},
			Featured: true,
			InStock:  true,
		},
		{
			ID:       "kawasaki-ninja-zx10r",
			Name:     "Ninja ZX-10R",
			Brand:    "Kawasaki",
			Category: "Sport",
			Price:    1539000,
			Colors: []string{
				"Lime Green/Ebony/Pearl Blizzard White",
				"Metallic Matte Graphenesteel Gray/Metallic Diablo Black",
			},
			InStock: true,
		},
		{
			ID:       "honda-cbr1000rr-r-fireblade",
			Name:     "CBR1000RR-R Fireblade",
			Brand:    "Honda",
			Category: "Sport",
			Price:    2340000,
			Colors:   []string{"Grand Prix Red", "Matte Pearl Morion Black"},
			New:      true,
			InStock:  true,
		},
		{
			ID:       "yamaha-yzf-r1",
			Name:     "YZF-R1",
			Brand:    "Yamaha",
			Category: "Sport",
			Price:    2050000,
			Colors:   []string{"Team Yamaha Blue", "Performance Black"},
			Featured: true,
			InStock:  true,
		},
		{
			ID:       "ktm-1290-super-duke-r",
			Name:     "1290 Super Duke R",
			Brand:    "KTM",
			Category: "Naked",
			Price:    1895000,
			Colors:   []string{"Orange", "Black"},
			InStock:  true,
		},
		{
			ID:       "triumph-speed-triple-1200-rs",
			Name:     "Speed Triple 1200 RS",
			Brand:    "Triumph",
			Category: "Naked",
			Price:    1750000,
			Colors:   []string{"Sapphire Black", "Matt Silver Ice"},
			New:      true,
			InStock:  true,
		},
		{
			ID:       "suzuki-hayabusa",
			Name:     "Hayabusa",
			Brand:    "Suzuki",
			Category: "Sport",
			Price:    1640000,
			Colors: []string{
				"Glass Sparkle Black/Candy Burnt Gold",
				"Metallic Matte Sword Silver/Candy Daring Red",
				"Pearl Brilliant White/Metallic Matte Stellar Blue",
			},
			Featured: true,
			InStock:  true,
		},
		{
			ID:       "mv-agusta-f4-rc",
			Name:     "F4 RC",
			Brand:    "MV Agusta",
			Category: "Sport",
			Price:    4920000,
			Colors:   []string{"RC Racing Livery"},
			InStock:  false,
		},
		{
			ID:       "aprilia-rsv4-factory",
			Name:     "RSV4 Factory",
			Brand:    "Aprilia",
			Category: "Sport",
			Price:    2390000,
			Colors:   []string{"Aprilia Black", "Lava Red"},
			New:      true,
			InStock:  true,
		},
		{
			ID:       "harley-davidson-fat-boy",
			Name:     "Fat Boy",
			Brand:    "Harley-Davidson",
			Category: "Cruiser",
			Price:    2085000,
			Colors:   []string{"Vivid Black", "Bright Chrome", "River Rock Gray"},
			InStock:  true,
		},
		{
			ID:       "bmw-r-1250-gs-adventure",
			Name:     "R 1250 GS Adventure",
			Brand:    "BMW",
			Category: "Adventure",
			Price:    2190000,
			Colors:   []string{"Ice Gray", "Kalamata Metallic Matte", "Triple Black"},
			Featured: true,
			InStock:  true,
		},
		{
			ID:              "royal-enfield-continental-gt-650",
			Name:            "Continental GT 650",
			Brand:           "Royal Enfield",
			Category:        "Naked",
			Price:           310000,
			DiscountedPrice: int64ptr(285000),
			Colors: []string{
				"Mr Clean", "British Racing Green", "Ventura Blue",
				"Dux Deluxe", "Sunset Strip",
			},
			InStock: true,
		},
	}
}
