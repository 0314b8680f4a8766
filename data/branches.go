package data

import "github.com/Ptr234/christheartMinistrieswebsitegg/models"

// Branches is the branch directory. Coordinates are decimal degrees;
// branches that have not been surveyed yet carry the (0,0) sentinel and are
// skipped by distance ranking.
var Branches = []models.Branch{
	{
		ID:      "kampala",
		Name:    "Christ's Heart Kampala",
		Address: "Mabirizi Complex, Kampala Road",
		City:    "Kampala",
		Phone:   "+256 704 320 100",
		Email:   "kampala@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 0.3136, Longitude: 32.5811},
		Pastors: []models.Pastor{
			{Name: "Apostle Isaiah Mbuga", Role: "Senior Pastor"},
			{Name: "Pastor Sarah Mbuga", Role: "Associate Pastor"},
		},
		Testimonials: []models.Testimonial{
			{Name: "Kenneth Ssemanda", Text: "I found a family here. The Word is taught with clarity and power."},
			{Name: "Esther Namutebi", Text: "My business was restored after the January prayer and fasting season."},
		},
		ServiceTimes: "Sunday: 7am, 9am (Teen's), 11am & 4pm",
	},
	{
		ID:       "mukono",
		Name:     "Christ's Heart Mukono",
		Address:  "Mukono Town, Kampala-Jinja Highway",
		City:     "Mukono",
		Phone:    "+256 705 029 100",
		Email:    "mukono@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 0.3533, Longitude: 32.7553},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "lugazi",
		Name:     "Christ's Heart Lugazi",
		Address:  "Lugazi Town",
		City:     "Lugazi",
		Phone:    "+256 773 441 020",
		Email:    "lugazi@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 0.3700, Longitude: 32.9400},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "lira",
		Name:     "Christ's Heart Lira",
		Address:  "Lira Town",
		City:     "Lira",
		Phone:    "+256 773 905 117",
		Email:    "lira@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 2.2350, Longitude: 32.9097},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "jinja",
		Name:     "Christ's Heart Jinja",
		Address:  "Buwenda, Jinja",
		City:     "Jinja",
		Phone:    "+256 774 205 500",
		Email:    "jinja@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 0.4244, Longitude: 33.2041},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "iganga",
		Name:     "Christ's Heart Iganga",
		Address:  "Iganga Town",
		City:     "Iganga",
		Phone:    "+256 774 205 439",
		Email:    "iganga@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 0.6092, Longitude: 33.4686},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "soroti",
		Name:     "Christ's Heart Soroti",
		Address:  "Soroti Town",
		City:     "Soroti",
		Phone:    "+256 704 370 801",
		Email:    "soroti@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 1.7146, Longitude: 33.6112},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "mbale",
		Name:     "Christ's Heart Mbale",
		Address:  "Half London, Mbale",
		City:     "Mbale",
		Phone:    "+256 704 370 801",
		Email:    "mbale@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 1.0784, Longitude: 34.1750},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "masaka",
		Name:     "Christ's Heart Masaka",
		Address:  "Nyendo, Masaka",
		City:     "Masaka",
		Phone:    "+256 779 590 918",
		Email:    "masaka@christsheartministries.org",
		Location: models.GeoPoint{Latitude: -0.3333, Longitude: 31.7340},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "gulu",
		Name:     "Christ's Heart Gulu",
		Address:  "Market Street, Gulu",
		City:     "Gulu",
		Phone:    "+256 774 851 249",
		Email:    "gulu@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 2.7746, Longitude: 32.2990},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "mbarara",
		Name:     "Christ's Heart Mbarara",
		Address:  "Mbarara Town Centre",
		City:     "Mbarara",
		Phone:    "+256 759 723 344",
		Email:    "mbarara@christsheartministries.org",
		Location: models.GeoPoint{Latitude: -0.6072, Longitude: 30.6545},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "fort-portal",
		Name:     "Christ's Heart Fort Portal",
		Address:  "Fort Portal Town",
		City:     "Fort Portal",
		Phone:    "+256 700 881 034",
		Email:    "fortportal@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 0.6710, Longitude: 30.2748},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "masindi",
		Name:     "Christ's Heart Masindi",
		Address:  "Masindi Town",
		City:     "Masindi",
		Phone:    "+256 700 195 300",
		Email:    "masindi@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 1.6744, Longitude: 31.7150},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "hoima",
		Name:     "Christ's Heart Hoima",
		Address:  "Hoima Town",
		City:     "Hoima",
		Phone:    "+256 704 320 213",
		Email:    "hoima@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 1.4332, Longitude: 31.3523},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "bugolobi",
		Name:     "Christ's Heart Bugolobi",
		Address:  "Bugolobi, Kampala",
		City:     "Bugolobi",
		Phone:    "+256 700 195 300",
		Email:    "bugolobi@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 0.3163, Longitude: 32.6204},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "makerere",
		Name:     "Christ's Heart Makerere",
		Address:  "Wandegeya, Makerere",
		City:     "Makerere",
		Phone:    "+256 704 320 213",
		Email:    "makerere@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 0.3350, Longitude: 32.5667},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "kisaasi",
		Name:     "Christ's Heart Kisaasi",
		Address:  "Kisaasi, Kampala",
		City:     "Kisaasi",
		Phone:    "+256 774 550 230",
		Email:    "kisaasi@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 0.3664, Longitude: 32.5997},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		// New church plant; site coordinates pending survey.
		ID:       "buluba",
		Name:     "Christ's Heart Buluba",
		Address:  "Buluba",
		City:     "Buluba",
		Phone:    "+256 774 250 868",
		Email:    "buluba@christsheartministries.org",
		Location: models.GeoPoint{},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		ID:       "nansana",
		Name:     "Christ's Heart Nansana",
		Address:  "Nansana, Wakiso",
		City:     "Nansana",
		Phone:    "+256 774 250 868",
		Email:    "nansana@christsheartministries.org",
		Location: models.GeoPoint{Latitude: 0.3639, Longitude: 32.5289},
		ServiceTimes: "Sunday: 9am & 11am",
	},
	{
		// New church plant; site coordinates pending survey.
		ID:       "mityana",
		Name:     "Christ's Heart Mityana",
		Address:  "Mityana Town",
		City:     "Mityana",
		Phone:    "+256 700 881 034",
		Email:    "mityana@christsheartministries.org",
		Location: models.GeoPoint{},
		ServiceTimes: "Sunday: 9am & 11am",
	},
}

// BranchByID returns the branch with the given id, or nil.
func BranchByID(id string) *models.Branch {
	for i := range Branches {
		if Branches[i].ID == id {
			return &Branches[i]
		}
	}
	return nil
}
