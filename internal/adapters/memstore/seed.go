package memstore

import (
	"log"
	"palais-immobilier-api/internal/core/domain"
	"time"
)

func ptrFloat(v float64) *float64 { return &v }

// SeedProperties returns the canonical sample catalog of six listings.
func SeedProperties() []domain.Property {
	return []domain.Property{
		{
			ID:           "1",
			Price:        450000,
			ListingType:  domain.ListingBuy,
			Status:       domain.StatusAvailable,
			PropertyType: domain.PropertyApartment,
			Bedrooms:     3,
			Bathrooms:    2,
			SurfaceArea:  140,
			YearBuilt:    2015,
			Address:      "12 Rue Abou Hanifa",
			City:         "Casablanca",
			Neighborhood: "Maarif",
			ZipCode:      "20330",
			Latitude:     ptrFloat(33.5862),
			Longitude:    ptrFloat(-7.6322),
			HasParking:   true,
			HasElevator:  true,
			HasAC:        true,
			Images: []string{
				"https://cdn.palaisrouge.ma/listings/1/salon.jpg",
				"https://cdn.palaisrouge.ma/listings/1/cuisine.jpg",
			},
			Featured:  true,
			Approved:  true,
			ViewCount: 214,
			AgentID:   "2",
			AgentName: "Yasmine Alaoui",
			CreatedAt: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           "2",
			Price:        2500000,
			ListingType:  domain.ListingBuy,
			Status:       domain.StatusAvailable,
			PropertyType: domain.PropertyVilla,
			Bedrooms:     6,
			Bathrooms:    5,
			SurfaceArea:  620,
			YearBuilt:    2019,
			Address:      "7 Boulevard de l'Océan Atlantique",
			City:         "Casablanca",
			Neighborhood: "Anfa",
			ZipCode:      "20180",
			Latitude:     ptrFloat(33.5941),
			Longitude:    ptrFloat(-7.6645),
			HasPool:      true,
			HasGarden:    true,
			HasParking:   true,
			HasSecurity:  true,
			HasGym:       true,
			Images: []string{
				"https://cdn.palaisrouge.ma/listings/2/facade.jpg",
				"https://cdn.palaisrouge.ma/listings/2/piscine.jpg",
				"https://cdn.palaisrouge.ma/listings/2/jardin.jpg",
			},
			VirtualTour: "https://tours.palaisrouge.ma/villa-anfa",
			Featured:    true,
			Approved:    true,
			ViewCount:   587,
			AgentID:     "2",
			AgentName:   "Yasmine Alaoui",
			CreatedAt:   time.Date(2024, 2, 18, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:           "3",
			Price:        650000,
			ListingType:  domain.ListingBuy,
			Status:       domain.StatusPending,
			PropertyType: domain.PropertyHouse,
			Bedrooms:     4,
			Bathrooms:    3,
			SurfaceArea:  260,
			YearBuilt:    2008,
			Address:      "24 Avenue Mehdi Ben Barka",
			City:         "Rabat",
			Neighborhood: "Hay Riad",
			ZipCode:      "10100",
			Latitude:     ptrFloat(33.9599),
			Longitude:    ptrFloat(-6.8668),
			HasGarden:    true,
			HasParking:   true,
			Images: []string{
				"https://cdn.palaisrouge.ma/listings/3/facade.jpg",
			},
			Approved:  true,
			ViewCount: 98,
			AgentID:   "2",
			AgentName: "Yasmine Alaoui",
			CreatedAt: time.Date(2024, 1, 28, 14, 15, 0, 0, time.UTC),
		},
		{
			ID:           "4",
			Price:        8500,
			ListingType:  domain.ListingRent,
			Status:       domain.StatusAvailable,
			PropertyType: domain.PropertyApartment,
			Bedrooms:     2,
			Bathrooms:    1,
			SurfaceArea:  95,
			YearBuilt:    2012,
			Address:      "3 Rue Jean Jaurès",
			City:         "Casablanca",
			Neighborhood: "Gauthier",
			ZipCode:      "20060",
			Latitude:     ptrFloat(33.5885),
			Longitude:    ptrFloat(-7.6270),
			HasElevator:  true,
			HasAC:        true,
			Images: []string{
				"https://cdn.palaisrouge.ma/listings/4/sejour.jpg",
			},
			Approved:  true,
			ViewCount: 156,
			AgentID:   "2",
			AgentName: "Yasmine Alaoui",
			CreatedAt: time.Date(2024, 3, 2, 11, 45, 0, 0, time.UTC),
		},
		{
			ID:           "5",
			Price:        15000,
			ListingType:  domain.ListingRent,
			Status:       domain.StatusAvailable,
			PropertyType: domain.PropertyVilla,
			Bedrooms:     5,
			Bathrooms:    4,
			SurfaceArea:  480,
			YearBuilt:    2016,
			Address:      "18 Route de Malabata",
			City:         "Tanger",
			Neighborhood: "Malabata",
			ZipCode:      "90000",
			Latitude:     ptrFloat(35.7806),
			Longitude:    ptrFloat(-5.7656),
			HasPool:      true,
			HasGarden:    true,
			HasParking:   true,
			HasSecurity:  true,
			Images: []string{
				"https://cdn.palaisrouge.ma/listings/5/vue-mer.jpg",
				"https://cdn.palaisrouge.ma/listings/5/terrasse.jpg",
			},
			Featured:  true,
			Approved:  true,
			ViewCount: 342,
			AgentID:   "2",
			AgentName: "Yasmine Alaoui",
			CreatedAt: time.Date(2024, 2, 25, 16, 20, 0, 0, time.UTC),
		},
		{
			ID:           "6",
			Price:        850000,
			ListingType:  domain.ListingBuy,
			Status:       domain.StatusAvailable,
			PropertyType: domain.PropertyCommercial,
			Bedrooms:     0,
			Bathrooms:    2,
			SurfaceArea:  310,
			YearBuilt:    2010,
			Address:      "Avenue Hassan II, Immeuble Al Bahja",
			City:         "Agadir",
			ZipCode:      "80000",
			Latitude:     ptrFloat(30.4202),
			Longitude:    ptrFloat(-9.5982),
			HasParking:   true,
			HasAC:        true,
			HasSecurity:  true,
			Images: []string{
				"https://cdn.palaisrouge.ma/listings/6/plateau.jpg",
			},
			Approved:  true,
			ViewCount: 67,
			AgentID:   "2",
			AgentName: "Yasmine Alaoui",
			CreatedAt: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
		},
	}
}

// SeedUsers returns the fixed credential table. Passwords are hashed at seed
// time; the demo credentials (admin/123, agent/123, user/123) stay valid.
func SeedUsers() []domain.User {
	type seedEntry struct {
		id, username, name, password string
		role                         domain.Role
		email, phone, bio            string
		listings, sold               int
	}

	entries := []seedEntry{
		{
			id: "1", username: "admin", name: "Karim Bennani", password: "123",
			role:  domain.RoleAdmin,
			email: "karim@palaisrouge.ma", phone: "+212 6 61 00 00 01",
		},
		{
			id: "2", username: "agent", name: "Yasmine Alaoui", password: "123",
			role:  domain.RoleAgent,
			email: "yasmine@palaisrouge.ma", phone: "+212 6 61 00 00 02",
			bio:      "Conseillère immobilière, spécialiste du triangle d'or de Casablanca.",
			listings: 6, sold: 23,
		},
		{
			id: "3", username: "user", name: "Omar El Fassi", password: "123",
			role:  domain.RoleUser,
			email: "omar@example.com", phone: "+212 6 61 00 00 03",
		},
	}

	users := make([]domain.User, 0, len(entries))
	for _, e := range entries {
		u, err := domain.NewUser(e.id, e.username, e.name, e.password, e.role)
		if err != nil {
			// bcrypt only fails on absurd cost/input; the seed table is static.
			log.Fatalf("seed users: %v", err)
		}
		u.Email = e.email
		u.Phone = e.phone
		u.Bio = e.bio
		u.Listings = e.listings
		u.SoldProperties = e.sold
		users = append(users, *u)
	}
	return users
}
