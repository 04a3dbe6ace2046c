// Package election хранит неизменяемые справочные таблицы ночи выборов:
// отслеживаемые годы, цвета партий, экзит-пол, диапазоны прогнозов и ключевые округа.
// Таблицы инициализируются один раз; наружу отдаются только копии.
package election

import "election_dashboard/internal/models"

var trackedYears = []string{"2019", "2017", "2015", "2010", "2005", "2001"}

var buckets = []models.Party{
	models.PartyCON,
	models.PartyLAB,
	models.PartyLD,
	models.PartyPCSNP,
}

// Партии, места которых вводятся вживую, в порядке отображения.
var liveParties = []string{"Lab", "Con", "LDem", "SNP", "Reform", "Plaid", "Green"}

var partyColours = map[string]string{
	"Lab":    "#DC241f",
	"Con":    "#0087DC",
	"LDem":   "#FDBB30",
	"SNP":    "#FDF38E",
	"Reform": "#12B2B5",
	"Plaid":  "#3F8428",
	"Green":  "#6AB023",
}

var exitPoll = []models.ExitPollEntry{
	{Name: "Conservative", Seats: 288, Colour: "#0087DC"},
	{Name: "Labour", Seats: 267, Colour: "#DC241f"},
	{Name: "SNP", Seats: 55, Colour: "#FDF38E"},
	{Name: "Liberal Democrats", Seats: 27, Colour: "#FDBB30"},
	{Name: "Others", Seats: 13, Colour: "#999999"},
}

type projectionRange struct {
	min, max, projected int
}

var projectionRanges = map[string]projectionRange{
	"Lab":    {min: 447, max: 517, projected: 484},
	"Con":    {min: 34, max: 99, projected: 64},
	"LDem":   {min: 49, max: 73, projected: 61},
	"SNP":    {min: 3, max: 21, projected: 10},
	"Reform": {min: 1, max: 16, projected: 7},
	"Plaid":  {min: 1, max: 6, projected: 3},
	"Green":  {min: 1, max: 6, projected: 3},
}

const (
	blueWall    = "Conservative-held seat where Liberal Democrats are the primary challenger."
	redWall     = "Former Labour stronghold in the North, flipped by Conservatives in 2019."
	leaveRedoub = "Solidly Conservative and strong Leave support."
	strongLeave = "Conservative seat with strong Leave support, previously Labour."
	diverse     = "Labour-held with significant Asian and Muslim population."
)

var keyConstituencies = []models.ConstituencyGroup{
	{Category: "Blue Wall frontline", Constituencies: []models.Constituency{
		{Name: "Cheltenham", Time: "3am", Significance: blueWall},
		{Name: "Godalming and Ash", Time: "3.30am", Significance: blueWall},
		{Name: "Wimbledon", Time: "3.45am", Significance: blueWall},
		{Name: "Taunton and Wellington", Time: "4.30am", Significance: blueWall},
		{Name: "Cheadle", Time: "5am", Significance: blueWall},
	}},
	{Category: "Red Wall defences", Constituencies: []models.Constituency{
		{Name: "Barrow and Furness", Time: "4am", Significance: redWall},
		{Name: "Darlington", Time: "2am", Significance: redWall},
		{Name: "Rother Valley", Time: "3.30am", Significance: redWall},
		{Name: "Stoke–on-Trent Central", Time: "5am", Significance: redWall},
	}},
	{Category: "Conservative/Leave redoubts", Constituencies: []models.Constituency{
		{Name: "Maldon", Time: "5am", Significance: leaveRedoub},
		{Name: "Norfolk South West", Time: "5.30am", Significance: leaveRedoub},
		{Name: "North Herefordshire", Time: "5am", Significance: leaveRedoub},
		{Name: "Honiton and Sidmouth", Time: "5am", Significance: leaveRedoub},
		{Name: "Grantham & Bourne", Time: "3.45am", Significance: leaveRedoub},
	}},
	{Category: "Conservative/Strong Leave seats", Constituencies: []models.Constituency{
		{Name: "Castle Point", Time: "2am", Significance: strongLeave},
		{Name: "Clacton", Time: "4am", Significance: strongLeave},
		{Name: "Redcar", Time: "2am", Significance: strongLeave},
		{Name: "Broxbourne", Time: "00.15am", Significance: strongLeave},
		{Name: "Tamworth", Time: "3.45am", Significance: strongLeave},
	}},
	{Category: "Diverse battlegrounds", Constituencies: []models.Constituency{
		{Name: "Bradford West", Time: "4.30am", Significance: diverse},
		{Name: "Birmingham Ladywood", Time: "4am", Significance: diverse},
		{Name: "Harrow East", Time: "3.30am", Significance: diverse},
		{Name: "East Ham", Time: "5.30am", Significance: diverse},
		{Name: "Oldham West, Chadderton and Royton", Time: "3.30am", Significance: diverse},
		{Name: "Rochdale", Time: "2.30am", Significance: diverse},
		{Name: "Leicester East", Time: "2am", Significance: diverse},
	}},
}

// TrackedYears возвращает годы, попадающие в агрегацию, в порядке вывода.
func TrackedYears() []string {
	return append([]string(nil), trackedYears...)
}

// Bucket сопоставляет метку партии из таблицы с корзиной агрегации.
func Bucket(label string) models.Party {
	for _, b := range buckets {
		if string(b) == label {
			return b
		}
	}
	return models.PartyOther
}

// LiveParties возвращает партии живого табло.
func LiveParties() []string {
	return append([]string(nil), liveParties...)
}

// IsLiveParty сообщает, ведётся ли по party живой подсчёт.
func IsLiveParty(party string) bool {
	_, ok := partyColours[party]
	return ok
}

// Colour возвращает цвет партии или нейтральный серый.
func Colour(party string) string {
	if c, ok := partyColours[party]; ok {
		return c
	}
	return "#999999"
}

// ExitPoll возвращает копию данных экзит-пола.
func ExitPoll() []models.ExitPollEntry {
	return append([]models.ExitPollEntry(nil), exitPoll...)
}

// KeyConstituencies возвращает глубокую копию групп ключевых округов.
func KeyConstituencies() []models.ConstituencyGroup {
	out := make([]models.ConstituencyGroup, len(keyConstituencies))
	for i, g := range keyConstituencies {
		out[i] = models.ConstituencyGroup{
			Category:       g.Category,
			Constituencies: append([]models.Constituency(nil), g.Constituencies...),
		}
	}
	return out
}

// Projections сопоставляет диапазоны прогноза с текущими местами seats.
// Партия без записи в seats считается с нулём мест.
func Projections(seats map[string]int) []models.Projection {
	out := make([]models.Projection, 0, len(liveParties))
	for _, party := range liveParties {
		r := projectionRanges[party]
		current := seats[party]
		out = append(out, models.Projection{
			Party:       party,
			Min:         r.min,
			Max:         r.max,
			Projected:   r.projected,
			Current:     current,
			WithinRange: current >= r.min && current <= r.max,
			Colour:      Colour(party),
		})
	}
	return out
}
