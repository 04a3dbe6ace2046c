package models

// ElectionRow — строка исторической таблицы. Все поля строковые, как в CSV.
type ElectionRow struct {
	Election string
	Party    string
	Seats    string
	// Line — номер строки в источнике, для логов.
	Line int
}

// Party — одна из пяти корзин агрегации.
type Party string

const (
	PartyCON   Party = "CON"
	PartyLAB   Party = "LAB"
	PartyLD    Party = "LD"
	PartyPCSNP Party = "PC/SNP"
	PartyOther Party = "Other"
)

// YearlyTally — места по корзинам за один отслеживаемый год.
type YearlyTally struct {
	Year  string `json:"year"`
	CON   int    `json:"CON"`
	LAB   int    `json:"LAB"`
	LD    int    `json:"LD"`
	PCSNP int    `json:"PC/SNP"`
	Other int    `json:"Other"`
}

// Add прибавляет seats к корзине party. Неизвестная корзина считается Other.
func (t *YearlyTally) Add(party Party, seats int) {
	switch party {
	case PartyCON:
		t.CON += seats
	case PartyLAB:
		t.LAB += seats
	case PartyLD:
		t.LD += seats
	case PartyPCSNP:
		t.PCSNP += seats
	default:
		t.Other += seats
	}
}

// Total возвращает сумму мест по всем корзинам.
func (t YearlyTally) Total() int {
	return t.CON + t.LAB + t.LD + t.PCSNP + t.Other
}

// ExitPollEntry — прогноз экзит-пола для одной партии.
type ExitPollEntry struct {
	Name   string `json:"name"`
	Seats  int    `json:"seats"`
	Colour string `json:"colour"`
}

// Projection — диапазон прогноза вместе с текущим числом мест.
type Projection struct {
	Party       string `json:"party"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Projected   int    `json:"projected"`
	Current     int    `json:"current"`
	WithinRange bool   `json:"withinRange"`
	Colour      string `json:"colour"`
}

// Constituency — округ, за которым стоит следить в ночь выборов.
type Constituency struct {
	Name         string `json:"name"`
	Time         string `json:"time"`
	Significance string `json:"significance"`
}

// ConstituencyGroup объединяет округа одной категории.
type ConstituencyGroup struct {
	Category       string         `json:"category"`
	Constituencies []Constituency `json:"constituencies"`
}
