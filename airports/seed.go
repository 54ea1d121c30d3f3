package airports

import "github.com/adrianrdguez/GoFast/models"

// defaultAirports is the built-in directory seed. The International flag
// marks hubs whose unknown-destination flights are assumed international.
var defaultAirports = []models.Airport{
	// Thailand
	{Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "TH", Coordinate: models.Coordinate{Latitude: 13.6900, Longitude: 100.7501}, Timezone: "Asia/Bangkok", International: true, Terminals: []string{"Main", "SAT-1"}},
	{Code: "DMK", Name: "Don Mueang International Airport", City: "Bangkok", Country: "TH", Coordinate: models.Coordinate{Latitude: 13.9126, Longitude: 100.6067}, Timezone: "Asia/Bangkok", International: true, Terminals: []string{"1", "2"}},
	{Code: "HKT", Name: "Phuket International Airport", City: "Phuket", Country: "TH", Coordinate: models.Coordinate{Latitude: 8.1132, Longitude: 98.3169}, Timezone: "Asia/Bangkok", International: true},
	{Code: "CNX", Name: "Chiang Mai International Airport", City: "Chiang Mai", Country: "TH", Coordinate: models.Coordinate{Latitude: 18.7668, Longitude: 98.9626}, Timezone: "Asia/Bangkok", International: true},
	{Code: "USM", Name: "Samui Airport", City: "Ko Samui", Country: "TH", Coordinate: models.Coordinate{Latitude: 9.5479, Longitude: 100.0623}, Timezone: "Asia/Bangkok", International: true},
	{Code: "KBV", Name: "Krabi International Airport", City: "Krabi", Country: "TH", Coordinate: models.Coordinate{Latitude: 8.0990, Longitude: 98.9862}, Timezone: "Asia/Bangkok", International: false},
	{Code: "HDY", Name: "Hat Yai International Airport", City: "Hat Yai", Country: "TH", Coordinate: models.Coordinate{Latitude: 6.9332, Longitude: 100.3932}, Timezone: "Asia/Bangkok", International: false},

	// East and Southeast Asia
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "SG", Coordinate: models.Coordinate{Latitude: 1.3644, Longitude: 103.9915}, Timezone: "Asia/Singapore", International: true, Terminals: []string{"1", "2", "3", "4"}},
	{Code: "KUL", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "MY", Coordinate: models.Coordinate{Latitude: 2.7456, Longitude: 101.7099}, Timezone: "Asia/Kuala_Lumpur", International: true},
	{Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "CN", Coordinate: models.Coordinate{Latitude: 22.3080, Longitude: 113.9185}, Timezone: "Asia/Hong_Kong", International: true, Terminals: []string{"1", "2"}},
	{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "JP", Coordinate: models.Coordinate{Latitude: 35.7720, Longitude: 140.3929}, Timezone: "Asia/Tokyo", International: true, Terminals: []string{"1", "2", "3"}},
	{Code: "HND", Name: "Tokyo Haneda Airport", City: "Tokyo", Country: "JP", Coordinate: models.Coordinate{Latitude: 35.5494, Longitude: 139.7798}, Timezone: "Asia/Tokyo", International: true, Terminals: []string{"1", "2", "3"}},
	{Code: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "KR", Coordinate: models.Coordinate{Latitude: 37.4602, Longitude: 126.4407}, Timezone: "Asia/Seoul", International: true, Terminals: []string{"1", "2"}},
	{Code: "PVG", Name: "Shanghai Pudong International Airport", City: "Shanghai", Country: "CN", Coordinate: models.Coordinate{Latitude: 31.1443, Longitude: 121.8083}, Timezone: "Asia/Shanghai", International: true, Terminals: []string{"1", "2"}},
	{Code: "PEK", Name: "Beijing Capital International Airport", City: "Beijing", Country: "CN", Coordinate: models.Coordinate{Latitude: 40.0799, Longitude: 116.6031}, Timezone: "Asia/Shanghai", International: true, Terminals: []string{"1", "2", "3"}},
	{Code: "TPE", Name: "Taiwan Taoyuan International Airport", City: "Taipei", Country: "TW", Coordinate: models.Coordinate{Latitude: 25.0777, Longitude: 121.2328}, Timezone: "Asia/Taipei", International: true, Terminals: []string{"1", "2"}},
	{Code: "MNL", Name: "Ninoy Aquino International Airport", City: "Manila", Country: "PH", Coordinate: models.Coordinate{Latitude: 14.5086, Longitude: 121.0194}, Timezone: "Asia/Manila", International: true},
	{Code: "CGK", Name: "Soekarno-Hatta International Airport", City: "Jakarta", Country: "ID", Coordinate: models.Coordinate{Latitude: -6.1256, Longitude: 106.6559}, Timezone: "Asia/Jakarta", International: true, Terminals: []string{"1", "2", "3"}},
	{Code: "DPS", Name: "Ngurah Rai International Airport", City: "Denpasar", Country: "ID", Coordinate: models.Coordinate{Latitude: -8.7482, Longitude: 115.1672}, Timezone: "Asia/Makassar", International: true},
	{Code: "SGN", Name: "Tan Son Nhat International Airport", City: "Ho Chi Minh City", Country: "VN", Coordinate: models.Coordinate{Latitude: 10.8188, Longitude: 106.6520}, Timezone: "Asia/Ho_Chi_Minh", International: true},
	{Code: "HAN", Name: "Noi Bai International Airport", City: "Hanoi", Country: "VN", Coordinate: models.Coordinate{Latitude: 21.2212, Longitude: 105.8072}, Timezone: "Asia/Ho_Chi_Minh", International: true},
	{Code: "DEL", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "IN", Coordinate: models.Coordinate{Latitude: 28.5562, Longitude: 77.1000}, Timezone: "Asia/Kolkata", International: true, Terminals: []string{"1", "2", "3"}},
	{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "IN", Coordinate: models.Coordinate{Latitude: 19.0896, Longitude: 72.8656}, Timezone: "Asia/Kolkata", International: true, Terminals: []string{"1", "2"}},

	// Middle East
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "AE", Coordinate: models.Coordinate{Latitude: 25.2532, Longitude: 55.3657}, Timezone: "Asia/Dubai", International: true, Terminals: []string{"1", "2", "3"}},
	{Code: "DOH", Name: "Hamad International Airport", City: "Doha", Country: "QA", Coordinate: models.Coordinate{Latitude: 25.2731, Longitude: 51.6081}, Timezone: "Asia/Qatar", International: true},
	{Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "TR", Coordinate: models.Coordinate{Latitude: 41.2753, Longitude: 28.7519}, Timezone: "Europe/Istanbul", International: true},

	// Europe
	{Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "GB", Coordinate: models.Coordinate{Latitude: 51.4700, Longitude: -0.4543}, Timezone: "Europe/London", International: true, Terminals: []string{"2", "3", "4", "5"}},
	{Code: "LGW", Name: "Gatwick Airport", City: "London", Country: "GB", Coordinate: models.Coordinate{Latitude: 51.1537, Longitude: -0.1821}, Timezone: "Europe/London", International: true, Terminals: []string{"North", "South"}},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "FR", Coordinate: models.Coordinate{Latitude: 49.0097, Longitude: 2.5479}, Timezone: "Europe/Paris", International: true, Terminals: []string{"1", "2", "3"}},
	{Code: "ORY", Name: "Paris Orly Airport", City: "Paris", Country: "FR", Coordinate: models.Coordinate{Latitude: 48.7262, Longitude: 2.3652}, Timezone: "Europe/Paris", International: true},
	{Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "NL", Coordinate: models.Coordinate{Latitude: 52.3105, Longitude: 4.7683}, Timezone: "Europe/Amsterdam", International: true},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "DE", Coordinate: models.Coordinate{Latitude: 50.0379, Longitude: 8.5622}, Timezone: "Europe/Berlin", International: true, Terminals: []string{"1", "2"}},
	{Code: "MUC", Name: "Munich Airport", City: "Munich", Country: "DE", Coordinate: models.Coordinate{Latitude: 48.3538, Longitude: 11.7861}, Timezone: "Europe/Berlin", International: true, Terminals: []string{"1", "2"}},
	{Code: "ZRH", Name: "Zurich Airport", City: "Zurich", Country: "CH", Coordinate: models.Coordinate{Latitude: 47.4647, Longitude: 8.5492}, Timezone: "Europe/Zurich", International: true},
	{Code: "MAD", Name: "Adolfo Suarez Madrid-Barajas Airport", City: "Madrid", Country: "ES", Coordinate: models.Coordinate{Latitude: 40.4983, Longitude: -3.5676}, Timezone: "Europe/Madrid", International: true, Terminals: []string{"1", "2", "3", "4"}},
	{Code: "BCN", Name: "Barcelona-El Prat Airport", City: "Barcelona", Country: "ES", Coordinate: models.Coordinate{Latitude: 41.2974, Longitude: 2.0833}, Timezone: "Europe/Madrid", International: true, Terminals: []string{"1", "2"}},
	{Code: "FCO", Name: "Leonardo da Vinci-Fiumicino Airport", City: "Rome", Country: "IT", Coordinate: models.Coordinate{Latitude: 41.8003, Longitude: 12.2389}, Timezone: "Europe/Rome", International: true, Terminals: []string{"1", "3"}},
	{Code: "MXP", Name: "Milan Malpensa Airport", City: "Milan", Country: "IT", Coordinate: models.Coordinate{Latitude: 45.6306, Longitude: 8.7281}, Timezone: "Europe/Rome", International: true, Terminals: []string{"1", "2"}},
	{Code: "LIS", Name: "Humberto Delgado Airport", City: "Lisbon", Country: "PT", Coordinate: models.Coordinate{Latitude: 38.7742, Longitude: -9.1342}, Timezone: "Europe/Lisbon", International: true, Terminals: []string{"1", "2"}},
	{Code: "DUB", Name: "Dublin Airport", City: "Dublin", Country: "IE", Coordinate: models.Coordinate{Latitude: 53.4264, Longitude: -6.2499}, Timezone: "Europe/Dublin", International: true, Terminals: []string{"1", "2"}},
	{Code: "CPH", Name: "Copenhagen Airport", City: "Copenhagen", Country: "DK", Coordinate: models.Coordinate{Latitude: 55.6180, Longitude: 12.6508}, Timezone: "Europe/Copenhagen", International: true, Terminals: []string{"2", "3"}},
	{Code: "ARN", Name: "Stockholm Arlanda Airport", City: "Stockholm", Country: "SE", Coordinate: models.Coordinate{Latitude: 59.6498, Longitude: 17.9239}, Timezone: "Europe/Stockholm", International: true},
	{Code: "OSL", Name: "Oslo Airport Gardermoen", City: "Oslo", Country: "NO", Coordinate: models.Coordinate{Latitude: 60.1976, Longitude: 11.1004}, Timezone: "Europe/Oslo", International: true},
	{Code: "HEL", Name: "Helsinki-Vantaa Airport", City: "Helsinki", Country: "FI", Coordinate: models.Coordinate{Latitude: 60.3183, Longitude: 24.9630}, Timezone: "Europe/Helsinki", International: true},
	{Code: "WAW", Name: "Warsaw Chopin Airport", City: "Warsaw", Country: "PL", Coordinate: models.Coordinate{Latitude: 52.1672, Longitude: 20.9679}, Timezone: "Europe/Warsaw", International: true},
	{Code: "PRG", Name: "Vaclav Havel Airport Prague", City: "Prague", Country: "CZ", Coordinate: models.Coordinate{Latitude: 50.1013, Longitude: 14.2632}, Timezone: "Europe/Prague", International: true, Terminals: []string{"1", "2"}},
	{Code: "ATH", Name: "Athens International Airport", City: "Athens", Country: "GR", Coordinate: models.Coordinate{Latitude: 37.9364, Longitude: 23.9445}, Timezone: "Europe/Athens", International: true},

	// Americas
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "US", Coordinate: models.Coordinate{Latitude: 40.6413, Longitude: -73.7781}, Timezone: "America/New_York", International: true, Terminals: []string{"1", "4", "5", "7", "8"}},
	{Code: "EWR", Name: "Newark Liberty International Airport", City: "Newark", Country: "US", Coordinate: models.Coordinate{Latitude: 40.6895, Longitude: -74.1745}, Timezone: "America/New_York", International: true, Terminals: []string{"A", "B", "C"}},
	{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "US", Coordinate: models.Coordinate{Latitude: 33.9416, Longitude: -118.4085}, Timezone: "America/Los_Angeles", International: true, Terminals: []string{"1", "2", "3", "4", "5", "6", "7", "8", "B"}},
	{Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "US", Coordinate: models.Coordinate{Latitude: 37.6213, Longitude: -122.3790}, Timezone: "America/Los_Angeles", International: true, Terminals: []string{"1", "2", "3", "International"}},
	{Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "US", Coordinate: models.Coordinate{Latitude: 41.9742, Longitude: -87.9073}, Timezone: "America/Chicago", International: true, Terminals: []string{"1", "2", "3", "5"}},
	{Code: "MDW", Name: "Chicago Midway International Airport", City: "Chicago", Country: "US", Coordinate: models.Coordinate{Latitude: 41.7868, Longitude: -87.7522}, Timezone: "America/Chicago", International: false},
	{Code: "MIA", Name: "Miami International Airport", City: "Miami", Country: "US", Coordinate: models.Coordinate{Latitude: 25.7959, Longitude: -80.2870}, Timezone: "America/New_York", International: true},
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "US", Coordinate: models.Coordinate{Latitude: 33.6407, Longitude: -84.4277}, Timezone: "America/New_York", International: true, Terminals: []string{"Domestic", "International"}},
	{Code: "DFW", Name: "Dallas Fort Worth International Airport", City: "Dallas", Country: "US", Coordinate: models.Coordinate{Latitude: 32.8998, Longitude: -97.0403}, Timezone: "America/Chicago", International: true, Terminals: []string{"A", "B", "C", "D", "E"}},
	{Code: "SEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", Country: "US", Coordinate: models.Coordinate{Latitude: 47.4502, Longitude: -122.3088}, Timezone: "America/Los_Angeles", International: true},
	{Code: "BOS", Name: "Logan International Airport", City: "Boston", Country: "US", Coordinate: models.Coordinate{Latitude: 42.3656, Longitude: -71.0096}, Timezone: "America/New_York", International: true, Terminals: []string{"A", "B", "C", "E"}},
	{Code: "SAN", Name: "San Diego International Airport", City: "San Diego", Country: "US", Coordinate: models.Coordinate{Latitude: 32.7338, Longitude: -117.1933}, Timezone: "America/Los_Angeles", International: false},
	{Code: "AUS", Name: "Austin-Bergstrom International Airport", City: "Austin", Country: "US", Coordinate: models.Coordinate{Latitude: 30.1975, Longitude: -97.6664}, Timezone: "America/Chicago", International: false},
	{Code: "PDX", Name: "Portland International Airport", City: "Portland", Country: "US", Coordinate: models.Coordinate{Latitude: 45.5898, Longitude: -122.5951}, Timezone: "America/Los_Angeles", International: false},
	{Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "CA", Coordinate: models.Coordinate{Latitude: 43.6777, Longitude: -79.6248}, Timezone: "America/Toronto", International: true, Terminals: []string{"1", "3"}},
	{Code: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "CA", Coordinate: models.Coordinate{Latitude: 49.1967, Longitude: -123.1815}, Timezone: "America/Vancouver", International: true},
	{Code: "MEX", Name: "Mexico City International Airport", City: "Mexico City", Country: "MX", Coordinate: models.Coordinate{Latitude: 19.4361, Longitude: -99.0719}, Timezone: "America/Mexico_City", International: true, Terminals: []string{"1", "2"}},
	{Code: "GRU", Name: "Sao Paulo-Guarulhos International Airport", City: "Sao Paulo", Country: "BR", Coordinate: models.Coordinate{Latitude: -23.4356, Longitude: -46.4731}, Timezone: "America/Sao_Paulo", International: true, Terminals: []string{"1", "2", "3"}},
	{Code: "EZE", Name: "Ministro Pistarini International Airport", City: "Buenos Aires", Country: "AR", Coordinate: models.Coordinate{Latitude: -34.8222, Longitude: -58.5358}, Timezone: "America/Argentina/Buenos_Aires", International: true},
	{Code: "SCL", Name: "Arturo Merino Benitez International Airport", City: "Santiago", Country: "CL", Coordinate: models.Coordinate{Latitude: -33.3930, Longitude: -70.7858}, Timezone: "America/Santiago", International: true},

	// Oceania and Africa
	{Code: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "AU", Coordinate: models.Coordinate{Latitude: -33.9399, Longitude: 151.1753}, Timezone: "Australia/Sydney", International: true, Terminals: []string{"1", "2", "3"}},
	{Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "AU", Coordinate: models.Coordinate{Latitude: -37.6690, Longitude: 144.8410}, Timezone: "Australia/Melbourne", International: true, Terminals: []string{"1", "2", "3", "4"}},
	{Code: "AKL", Name: "Auckland Airport", City: "Auckland", Country: "NZ", Coordinate: models.Coordinate{Latitude: -37.0082, Longitude: 174.7850}, Timezone: "Pacific/Auckland", International: true},
	{Code: "JNB", Name: "O. R. Tambo International Airport", City: "Johannesburg", Country: "ZA", Coordinate: models.Coordinate{Latitude: -26.1392, Longitude: 28.2460}, Timezone: "Africa/Johannesburg", International: true},
	{Code: "CAI", Name: "Cairo International Airport", City: "Cairo", Country: "EG", Coordinate: models.Coordinate{Latitude: 30.1219, Longitude: 31.4056}, Timezone: "Africa/Cairo", International: true},
}

// Default returns the built-in directory of major airports
func Default() *Directory {
	directory, err := NewDirectory(defaultAirports)
	if err != nil {
		panic(err)
	}
	return directory
}
