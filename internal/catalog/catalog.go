package catalog

import "prestige-backend/internal/models"

// SeedFleet is the fixed catalog the process starts with. Read-only except
// for Status, which the fleet store mutates copy-on-write.
func SeedFleet() []models.Car {
	return []models.Car{
		{
			ID: 1, Name: "Toyota Camry", Type: models.CarTypeSedan, PricePerDay: 55,
			ImageURL: "/images/cars/camry.jpg",
			Features: models.CarFeatures{Seats: 5, Transmission: "Automatic", Fuel: "Gasoline"},
			Status:   models.StatusAvailable, Location: "Downtown Branch",
		},
		{
			ID: 2, Name: "Honda CR-V", Type: models.CarTypeSUV, PricePerDay: 70,
			ImageURL: "/images/cars/crv.jpg",
			Features: models.CarFeatures{Seats: 5, Transmission: "Automatic", Fuel: "Gasoline"},
			Status:   models.StatusAvailable, Location: "Airport Terminal 2",
		},
		{
			ID: 3, Name: "Ford Mustang GT", Type: models.CarTypeSports, PricePerDay: 150,
			ImageURL: "/images/cars/mustang.jpg",
			Features: models.CarFeatures{Seats: 4, Transmission: "Manual", Fuel: "Gasoline"},
			Status:   models.StatusAvailable, Location: "Downtown Branch",
		},
		{
			ID: 4, Name: "Tesla Model 3", Type: models.CarTypeElectric, PricePerDay: 110,
			ImageURL: "/images/cars/model3.jpg",
			Features: models.CarFeatures{Seats: 5, Transmission: "Automatic", Fuel: "Electric"},
			Status:   models.StatusAvailable, Location: "Tech Park Station",
		},
		{
			ID: 5, Name: "Mercedes-Benz S-Class", Type: models.CarTypeLuxury, PricePerDay: 250,
			ImageURL: "/images/cars/sclass.jpg",
			Features: models.CarFeatures{Seats: 5, Transmission: "Automatic", Fuel: "Gasoline"},
			Status:   models.StatusAvailable, Location: "Grand Hotel Plaza",
		},
		{
			ID: 6, Name: "Chevrolet Tahoe", Type: models.CarTypeSUV, PricePerDay: 95,
			ImageURL: "/images/cars/tahoe.jpg",
			Features: models.CarFeatures{Seats: 7, Transmission: "Automatic", Fuel: "Gasoline"},
			Status:   models.StatusMaintenance, Location: "Service Center West",
		},
		{
			ID: 7, Name: "BMW M4", Type: models.CarTypeSports, PricePerDay: 180,
			ImageURL: "/images/cars/m4.jpg",
			Features: models.CarFeatures{Seats: 4, Transmission: "Automatic", Fuel: "Gasoline"},
			Status:   models.StatusAvailable, Location: "Airport Terminal 2",
		},
		{
			ID: 8, Name: "Volkswagen Passat", Type: models.CarTypeSedan, PricePerDay: 48,
			ImageURL: "/images/cars/passat.jpg",
			Features: models.CarFeatures{Seats: 5, Transmission: "Manual", Fuel: "Diesel"},
			Status:   models.StatusAvailable, Location: "Central Station",
		},
	}
}
