package data

import "github.com/Ptr234/christheartMinistrieswebsitegg/models"

// Events is the promoted events list. Dates are free text exactly as the
// media team writes them; the schedule utilities parse them best-effort.
var Events = []models.ChurchEvent{
	{
		ID:       "november-blessing",
		Name:     "November Blessing",
		Date:     "November 2026",
		Time:     "9:00 AM - 5:00 PM",
		Location: "Christ's Heart Kampala - Mabirizi Complex",
		Description: "An annual gathering of praise, worship, and prophetic declarations as we enter the season of thanksgiving. " +
			"Join thousands of believers for a day of supernatural encounters and divine blessings.",
		Category: "Conference",
	},
	{
		ID:       "youth-camp",
		Name:     "Youth Camp",
		Date:     "August 2026",
		Time:     "All Day Event",
		Location: "To Be Announced",
		Description: "A transformative youth camp experience designed to empower the next generation of leaders. " +
			"Activities include worship sessions, team building, sports, mentorship talks, and powerful evening services.",
		Category: "Camp",
	},
	{
		ID:       "men-of-action",
		Name:     "Men of Action",
		Date:     "21st March 2026",
		Time:     "8:00 AM - 4:00 PM",
		Location: "Christ's Heart Kampala",
		Description: "A conference dedicated to building godly men who lead with integrity, purpose, and faith. " +
			"Featuring guest speakers, breakout sessions, and fellowship designed specifically for men of all ages.",
		Category: "Conference",
	},
	{
		ID:       "virtuous-woman",
		Name:     "Virtuous Woman",
		Date:     "8th–10th May 2026",
		Time:     "9:00 AM - 5:00 PM",
		Location: "Christ's Heart Kampala - Mabirizi Complex",
		Description: "A powerful women's conference celebrating the strength, grace, and beauty of the godly woman. " +
			"Featuring worship, keynote speakers, panel discussions, and ministry time focused on identity, purpose, and destiny. " +
			"Women from all branches come together for a day of empowerment, sisterhood, and spiritual renewal as we explore the " +
			"Proverbs 31 woman in today's world.",
		Category: "Conference",
	},
}

// EventByID returns the event with the given id, or nil.
func EventByID(id string) *models.ChurchEvent {
	for i := range Events {
		if Events[i].ID == id {
			return &Events[i]
		}
	}
	return nil
}
