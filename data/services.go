package data

import (
	"time"

	"github.com/Ptr234/christheartMinistrieswebsitegg/models"
)

// WeeklySchedule is the recurring service table used by the live-now and
// next-service queries. Entries are declared in priority order and are
// non-overlapping by construction; the resolver returns the first match.
// Minutes are minutes after local midnight.
var WeeklySchedule = []models.RecurringService{
	{
		ID:          "sunday-early",
		Title:       "Sunday Service",
		Session:     "Early Morning Glory Service",
		Days:        []time.Weekday{time.Sunday},
		StartMinute: 7 * 60,
		EndMinute:   9 * 60,
		Location:    "All Branches",
		StreamLinks: []string{"https://www.youtube.com/@christsheartministries/live"},
	},
	{
		ID:          "sunday-teens",
		Title:       "Sunday Service",
		Session:     "Teen's Service",
		Days:        []time.Weekday{time.Sunday},
		StartMinute: 9 * 60,
		EndMinute:   11 * 60,
		Location:    "All Branches",
	},
	{
		ID:          "sunday-main",
		Title:       "Sunday Service",
		Session:     "Main Service",
		Days:        []time.Weekday{time.Sunday},
		StartMinute: 11 * 60,
		EndMinute:   14 * 60,
		Location:    "All Branches",
		StreamLinks: []string{"https://www.youtube.com/@christsheartministries/live"},
	},
	{
		ID:          "sunday-afternoon",
		Title:       "Sunday Service",
		Session:     "Afternoon Power Service",
		Days:        []time.Weekday{time.Sunday},
		StartMinute: 16 * 60,
		EndMinute:   18 * 60,
		Location:    "Christ's Heart Kampala",
	},
	{
		ID:          "lunch-hour",
		Title:       "Lunch Hour Service",
		Days:        []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		StartMinute: 12*60 + 45,
		EndMinute:   13*60 + 45,
		Location:    "Christ's Heart Kampala",
	},
	{
		ID:          "midweek-bible-study",
		Title:       "Discipleship Class",
		Session:     "Mid-Week Bible Study",
		Days:        []time.Weekday{time.Wednesday},
		StartMinute: 18 * 60,
		EndMinute:   20 * 60,
		Location:    "All Branches",
	},
	{
		ID:          "leadership-study",
		Title:       "Discipleship Class",
		Session:     "Leadership Bible Study",
		Days:        []time.Weekday{time.Thursday},
		StartMinute: 17*60 + 30,
		EndMinute:   19 * 60,
		Location:    "Christ's Heart Kampala",
	},
	{
		ID:          "friday-night-fire",
		Title:       "Night Service",
		Session:     "Friday Night Fire",
		Days:        []time.Weekday{time.Friday},
		StartMinute: 19 * 60,
		EndMinute:   21 * 60,
		Location:    "All Branches",
	},
	{
		// Ends 5:00 the following morning.
		ID:          "overnight-prayers",
		Title:       "Overnight Prayers",
		Session:     "All-Night Prayer",
		Days:        []time.Weekday{time.Friday},
		StartMinute: 22 * 60,
		EndMinute:   5 * 60,
		Location:    "Christ's Heart Kampala",
		Overnight:   true,
	},
	{
		ID:          "new-believers",
		Title:       "Discipleship Class",
		Session:     "New Believers' Class",
		Days:        []time.Weekday{time.Saturday},
		StartMinute: 10 * 60,
		EndMinute:   12 * 60,
		Location:    "Christ's Heart Kampala",
	},
}

// Services is the editorial content for the service detail pages.
var Services = []models.ServiceInfo{
	{
		ID:        "sunday-services",
		Title:     "Sunday Services",
		ShortDesc: "7am, 9am (Teen's Service), 11am and 4pm. Please check for variations with your local branch.",
		Description: []string{
			"Sunday Services are the heartbeat of Christ's Heart Ministries. Every Sunday, believers gather across our branches to experience powerful worship, anointed preaching, and the tangible presence of God.",
			"Whether you're a first-time visitor or a long-time member, you'll find a warm, welcoming atmosphere where the Word of God is taught with clarity and the power of God is demonstrated with signs and wonders.",
		},
		Schedule: []models.ScheduleEntry{
			{Day: "Sunday", Time: "7:00 AM", Details: "Early Morning Glory Service — A powerful start to the Lord's day with worship and the Word"},
			{Day: "Sunday", Time: "9:00 AM", Details: "Teen's Service — Dynamic worship and teaching tailored for teenagers and young adults"},
			{Day: "Sunday", Time: "11:00 AM", Details: "Main Service — The flagship gathering with full worship, choir ministration, and the sermon"},
			{Day: "Sunday", Time: "4:00 PM", Details: "Afternoon Power Service — An evening of deeper teaching, prayer, and prophetic ministry"},
		},
		BranchSchedules: []models.BranchSchedule{
			{BranchID: "kampala", BranchName: "Christ's Heart Kampala", City: "Kampala", Times: "Sunday: 7am, 9am (Teen's), 11am & 4pm"},
			{BranchID: "mukono", BranchName: "Christ's Heart Mukono", City: "Mukono", Times: "Sunday: 9am & 11am"},
			{BranchID: "jinja", BranchName: "Christ's Heart Jinja", City: "Jinja", Times: "Sunday: 9am & 11am"},
			{BranchID: "mbale", BranchName: "Christ's Heart Mbale", City: "Mbale", Times: "Sunday: 9am & 11am"},
			{BranchID: "gulu", BranchName: "Christ's Heart Gulu", City: "Gulu", Times: "Sunday: 9am & 11am"},
			{BranchID: "mbarara", BranchName: "Christ's Heart Mbarara", City: "Mbarara", Times: "Sunday: 9am & 11am"},
		},
	},
	{
		ID:        "discipleship-class",
		Title:     "Discipleship Class",
		ShortDesc: "Deep dive into God's word through interactive discipleship sessions and home cell fellowships.",
		Schedule: []models.ScheduleEntry{
			{Day: "Wednesday", Time: "6:00 PM", Details: "Mid-Week Bible Study — Systematic study through books of the Bible"},
			{Day: "Thursday", Time: "5:30 PM", Details: "Leadership Bible Study — Advanced study for church leaders and ministers"},
			{Day: "Saturday", Time: "10:00 AM", Details: "New Believers' Class — Foundational teaching for those new to the faith"},
		},
		BranchSchedules: []models.BranchSchedule{
			{BranchID: "kampala", BranchName: "Christ's Heart Kampala", City: "Kampala", Times: "Wednesday: 6pm | Saturday: 10am (New Believers)"},
			{BranchID: "mukono", BranchName: "Christ's Heart Mukono", City: "Mukono", Times: "Wednesday: 6pm"},
			{BranchID: "mbale", BranchName: "Christ's Heart Mbale", City: "Mbale", Times: "Thursday: 5:30pm"},
			{BranchID: "makerere", BranchName: "Christ's Heart Makerere", City: "Makerere", Times: "Tuesday: 6pm | Saturday: 10am"},
		},
	},
	{
		ID:        "overnight-prayers",
		Title:     "Overnight Prayers",
		ShortDesc: "Powerful overnight prayer sessions for breakthrough and divine encounters.",
		Schedule: []models.ScheduleEntry{
			{Day: "Friday", Time: "10:00 PM - 5:00 AM", Details: "Monthly All-Night Prayer — First Friday of every month"},
		},
		BranchSchedules: []models.BranchSchedule{
			{BranchID: "kampala", BranchName: "Christ's Heart Kampala", City: "Kampala", Times: "1st Friday: 10pm - 5am | Quarterly Prayer Summits"},
			{BranchID: "mukono", BranchName: "Christ's Heart Mukono", City: "Mukono", Times: "1st Friday: 10pm - 4am"},
			{BranchID: "mbale", BranchName: "Christ's Heart Mbale", City: "Mbale", Times: "Last Friday: 9pm - 4am"},
		},
	},
	{
		ID:        "lunch-hour-services",
		Title:     "Lunch Hour Services",
		ShortDesc: "Mid-day refreshing for working professionals and students.",
		Schedule: []models.ScheduleEntry{
			{Day: "Monday - Friday", Time: "12:45 PM - 1:45 PM", Details: "Daily Lunch Hour Service (Kampala) — Worship, the Word, and prayer"},
		},
		BranchSchedules: []models.BranchSchedule{
			{BranchID: "kampala", BranchName: "Christ's Heart Kampala", City: "Kampala", Times: "Mon-Fri: 12:45pm – 1:45pm"},
			{BranchID: "bugolobi", BranchName: "Christ's Heart Bugolobi", City: "Bugolobi", Times: "Check with branch for times"},
		},
	},
	{
		ID:        "home-cells",
		Title:     "Home Cells",
		ShortDesc: "Small group fellowships in homes for deeper connection and spiritual growth.",
		Schedule: []models.ScheduleEntry{
			{Day: "Tuesday - Thursday", Time: "Various Times", Details: "Weekly Home Cell meetings — Check with your local branch for specific days and times"},
		},
		CellLocations: []models.CellLocation{
			{Area: "Kampala Central", City: "Kampala", Day: "Tuesday", Time: "6:30 PM", Leader: "Bro. Kenneth Ssemanda", Contact: "+256 704 320 100"},
			{Area: "Ntinda / Kisaasi", City: "Kampala", Day: "Tuesday", Time: "6:30 PM", Leader: "Sis. Judith Nambi", Contact: "+256 774 550 230"},
			{Area: "Naalya / Kira", City: "Kampala", Day: "Wednesday", Time: "6:00 PM", Leader: "Bro. Martin Opio", Contact: "+256 700 881 034"},
			{Area: "Mukono Town", City: "Mukono", Day: "Wednesday", Time: "6:00 PM", Leader: "Sis. Grace Nanfuka", Contact: "+256 705 029 100"},
			{Area: "Buwenda, Jinja", City: "Jinja", Day: "Tuesday", Time: "6:00 PM", Leader: "Bro. John Mukisa Jr.", Contact: "+256 774 205 500"},
			{Area: "Half London, Mbale", City: "Mbale", Day: "Wednesday", Time: "6:00 PM", Leader: "Bro. Peter Wandera Jr.", Contact: "+256 704 370 801"},
		},
	},
	{
		ID:        "night-services",
		Title:     "Night Services",
		ShortDesc: "Special evening worship gatherings for spiritual empowerment.",
		Schedule: []models.ScheduleEntry{
			{Day: "Friday", Time: "7:00 PM", Details: "Friday Night Fire — Worship, Word, and Ministry"},
			{Day: "Last Saturday", Time: "6:00 PM", Details: "Monthly Night of Encounter — Special themed evening services"},
		},
		BranchSchedules: []models.BranchSchedule{
			{BranchID: "kampala", BranchName: "Christ's Heart Kampala", City: "Kampala", Times: "Friday: 7pm (Night Fire) | Last Sat: 6pm (Encounter Night)"},
			{BranchID: "makerere", BranchName: "Christ's Heart Makerere", City: "Makerere", Times: "Friday: 7pm (Campus Night Fire)"},
		},
	},
}

// ServiceByID returns the service page content with the given id, or nil.
func ServiceByID(id string) *models.ServiceInfo {
	for i := range Services {
		if Services[i].ID == id {
			return &Services[i]
		}
	}
	return nil
}
