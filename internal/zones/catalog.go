package zones

import "github.com/solarpal/solarpal-api/internal/domain"

// Catalog is the fixed set of sampling points the zone map is built from.
// One point per major city, immutable for the process lifetime.
var Catalog = []domain.SamplingPoint{
	{Name: "Manila", Region: "Metro Manila", Latitude: 14.5995, Longitude: 120.9842},
	{Name: "Cebu City", Region: "Central Visayas", Latitude: 10.3157, Longitude: 123.8854},
	{Name: "Davao City", Region: "Davao Region", Latitude: 7.1907, Longitude: 125.4553},
	{Name: "Baguio", Region: "Cordillera", Latitude: 16.4023, Longitude: 120.5960},
	{Name: "Iloilo City", Region: "Western Visayas", Latitude: 10.7202, Longitude: 122.5621},
	{Name: "Cagayan de Oro", Region: "Northern Mindanao", Latitude: 8.4542, Longitude: 124.6319},
	{Name: "Zamboanga City", Region: "Zamboanga Peninsula", Latitude: 6.9214, Longitude: 122.0790},
	{Name: "Bacolod", Region: "Negros Occidental", Latitude: 10.6770, Longitude: 122.9540},
	{Name: "General Santos", Region: "Soccsksargen", Latitude: 6.1164, Longitude: 125.1716},
	{Name: "Puerto Princesa", Region: "Palawan", Latitude: 9.7392, Longitude: 118.7353},
	{Name: "Tacloban", Region: "Eastern Visayas", Latitude: 11.2444, Longitude: 125.0039},
	{Name: "Legazpi", Region: "Bicol Region", Latitude: 13.1391, Longitude: 123.7438},
	{Name: "Tuguegarao", Region: "Cagayan Valley", Latitude: 17.6132, Longitude: 121.7270},
	{Name: "Laoag", Region: "Ilocos Norte", Latitude: 18.1978, Longitude: 120.5936},
	{Name: "Dagupan", Region: "Pangasinan", Latitude: 16.0433, Longitude: 120.3333},
	{Name: "Naga", Region: "Camarines Sur", Latitude: 13.6218, Longitude: 123.1948},
	{Name: "Dumaguete", Region: "Negros Oriental", Latitude: 9.3068, Longitude: 123.3054},
	{Name: "Butuan", Region: "Caraga", Latitude: 8.9475, Longitude: 125.5406},
	{Name: "Cotabato City", Region: "Bangsamoro", Latitude: 7.2047, Longitude: 124.2310},
	{Name: "Tagbilaran", Region: "Bohol", Latitude: 9.6475, Longitude: 123.8556},
}
