package content

import "github.com/abhisek/plantquiz/internal/quiz"

// Role is a relationship role shown on the result screen.
type Role string

const (
	RolePartner Role = "partner"
	RoleFriend  Role = "friend"
	RoleRival   Role = "rival"
)

// AllRoles returns roles in display order.
func AllRoles() []Role {
	return []Role{RolePartner, RoleFriend, RoleRival}
}

// DisplayName returns a human-readable label for the role.
func (r Role) DisplayName() string {
	switch r {
	case RolePartner:
		return "Partner / crush"
	case RoleFriend:
		return "Friend"
	case RoleRival:
		return "Rival"
	default:
		return string(r)
	}
}

// Coord places a profile on the emotion map, both axes in percent.
type Coord struct {
	X, Y int
}

// Relation pairs a role with the plants that fit it.
type Relation struct {
	Plants []quiz.Category
	Text   string
}

// Scent is a fragrance recommendation.
type Scent struct {
	Name string
	Text string
}

// Profile is the result metadata for one category. It is only used for
// presentation; scoring never reads it.
type Profile struct {
	Icon        string
	Name        string
	Tagline     string
	Description string
	Coord       Coord
	Accent      string // hex color
	Field       string
	FieldDesc   string
	Relations   map[Role]Relation
	Similar     Scent
	Balance     Scent
}

// ProfileFor returns the profile for c. Every valid category has one.
func ProfileFor(c quiz.Category) (Profile, bool) {
	if !c.Valid() {
		return Profile{}, false
	}
	return profiles[c], true
}

var profiles = [quiz.NumCategories]Profile{
	quiz.Lavender: {
		Icon:    "🌾",
		Name:    "Lavender",
		Tagline: "Calm x Cool | a sensitive soul that needs stillness",
		Description: "You feel everything strongly; the world's noise is always a little too loud.\n" +
			"You want to be understood, not clung to.\n" +
			"What you need are moments where you can switch the world off.\n" +
			"When things settle, your intuition becomes a rare kind of strength.",
		Coord:     Coord{X: 30, Y: 70},
		Accent:    "#C39AD9",
		Field:     "Calm Field",
		FieldDesc: "You have tucked yourself into a quiet, safe corner to recharge.",
		Relations: map[Role]Relation{
			RolePartner: {Plants: []quiz.Category{quiz.Hinoki}, Text: "Someone steady who never pushes you to perform."},
			RoleFriend:  {Plants: []quiz.Category{quiz.Chamomile}, Text: "Someone who understands your sensitivity and sits with you quietly."},
			RoleRival:   {Plants: []quiz.Category{quiz.Peony}, Text: "Loud, blazing energy that leaves you feeling swamped."},
		},
		Similar: Scent{Name: "Peaceful Night", Text: "Cool and settling, like the long breath you finally let out at night."},
		Balance: Scent{Name: "Light of Dawn", Text: "When you want to open up a little, like a window cracked at sunrise."},
	},
	quiz.Cypress: {
		Icon:    "🌲",
		Name:    "Cypress",
		Tagline: "Calm x Cool | independent, clear, on your own clock",
		Description: "You are in no hurry to blend into any crowd.\n" +
			"What matters is living well, not looking impressive.\n" +
			"You give things time, trusting that what matters survives the wait.\n" +
			"Your steadiness is something people want near them but hesitate to disturb.",
		Coord:     Coord{X: 40, Y: 65},
		Accent:    "#7FA48E",
		Field:     "Calm Field",
		FieldDesc: "You stand somewhere cool but solid, digesting the world at your own pace.",
		Relations: map[Role]Relation{
			RolePartner: {Plants: []quiz.Category{quiz.Chamomile}, Text: "Someone who brings warmth and feeling into your cooler world."},
			RoleFriend:  {Plants: []quiz.Category{quiz.Lavender}, Text: "You both know how precious shared silence is."},
			RoleRival:   {Plants: []quiz.Category{quiz.Peony}, Text: "You find them dramatic; they find you distant."},
		},
		Similar: Scent{Name: "Peaceful Night", Text: "A cool line of wood and herbs, close to your search for calm."},
		Balance: Scent{Name: "Warm Place", Text: "When life feels too rational, a small yellow lamp for your days."},
	},
	quiz.Hinoki: {
		Icon:    "🪵",
		Name:    "Hinoki",
		Tagline: "Calm x Warm | the steady guardian",
		Description: "You may not say much, but what needs doing gets done.\n" +
			"You care about promises and stability, and you hold on for the people who matter.\n" +
			"Sometimes you forget that you get tired too.\n" +
			"You are like a big tree: people exhale when they lean on you.",
		Coord:     Coord{X: 58, Y: 65},
		Accent:    "#C49A6C",
		Field:     "Harmony Field",
		FieldDesc: "You are the point on the map that makes people feel it is fine as long as you are here.",
		Relations: map[Role]Relation{
			RolePartner: {Plants: []quiz.Category{quiz.Lavender}, Text: "Someone sensitive who slowly relaxes by your side."},
			RoleFriend:  {Plants: []quiz.Category{quiz.Chamomile}, Text: "You both look after others, and quietly after each other."},
			RoleRival:   {Plants: []quiz.Category{quiz.Mint}, Text: "They want to speed up while you want to walk steadily."},
		},
		Similar: Scent{Name: "Warm Place", Text: "Soft wood and citrus, like your slow-is-fine pace."},
		Balance: Scent{Name: "Light of Dawn", Text: "When you need a push and a new direction, the first ray of morning."},
	},
	quiz.Chamomile: {
		Icon:    "🌼",
		Name:    "Chamomile",
		Tagline: "Calm x Warm | soft but resilient, a natural healer",
		Description: "You take care of people and notice the smallest shifts in mood.\n" +
			"You like making others feel understood and held,\n" +
			"yet over time you notice few people hold you.\n" +
			"You deserve tenderness that flows both ways.",
		Coord:     Coord{X: 68, Y: 60},
		Accent:    "#F4C37B",
		Field:     "Harmony Field",
		FieldDesc: "You live in a warm, soft quadrant, and often think of others first.",
		Relations: map[Role]Relation{
			RolePartner: {Plants: []quiz.Category{quiz.Cypress}, Text: "Someone steady and unclingy who gives your softness a backbone."},
			RoleFriend:  {Plants: []quiz.Category{quiz.Lavender}, Text: "Someone who gets your sensitivity and likes a low-noise world too."},
			RoleRival:   {Plants: []quiz.Category{quiz.Mint}, Text: "They say don't overthink it; you can't help it."},
		},
		Similar: Scent{Name: "Warm Place", Text: "The warmth of home, a reminder that you can be cared for too."},
		Balance: Scent{Name: "Peaceful Night", Text: "When you have absorbed too much, it helps you set the weight down."},
	},
	quiz.Mint: {
		Icon:    "🍃",
		Name:    "Mint",
		Tagline: "Active x Cool | the clear-headed doer",
		Description: "You dislike standing still.\n" +
			"Once there is a direction, you move fast and adjust fast.\n" +
			"Charging ahead sometimes hides how tired you already are.\n" +
			"Slow down a little and you will find you are more sensitive than you think.",
		Coord:     Coord{X: 40, Y: 30},
		Accent:    "#52C1A8",
		Field:     "Vital Field",
		FieldDesc: "You sit in a high-energy spot, pushing life forward through action.",
		Relations: map[Role]Relation{
			RolePartner: {Plants: []quiz.Category{quiz.Hinoki}, Text: "Someone who steadies your rhythm without putting out your fire."},
			RoleFriend:  {Plants: []quiz.Category{quiz.Peony}, Text: "Someone to run with; the plan is barely drafted and you are both in."},
			RoleRival:   {Plants: []quiz.Category{quiz.Lavender}, Text: "They want to power down while you want to power up."},
		},
		Similar: Scent{Name: "Light of Dawn", Text: "Bright and fresh, like your go-now momentum."},
		Balance: Scent{Name: "Warm Place", Text: "When your foot is always on the gas: some roads are for walking."},
	},
	quiz.Peony: {
		Icon:    "🌸",
		Name:    "Peony",
		Tagline: "Active x Warm | a radiant soul with a built-in stage",
		Description: "You picture your life vividly and want it to have some beauty and presence.\n" +
			"You love being seen, yet fall hard when no one understands you.\n" +
			"Your feelings are real and visible: love, delight, disappointment.\n" +
			"Learn to care for yourself while you shine, and you will be both dazzling and grounded.",
		Coord:     Coord{X: 76, Y: 28},
		Accent:    "#F29BB5",
		Field:     "Radiance Field",
		FieldDesc: "You sit high-energy and warm on the map, naturally the center of attention.",
		Relations: map[Role]Relation{
			RolePartner: {Plants: []quiz.Category{quiz.Lavender}, Text: "Someone who doesn't mind your noise and mutes the world when you crash."},
			RoleFriend:  {Plants: []quiz.Category{quiz.Mint}, Text: "Someone to get excited with and take every project a bit too far."},
			RoleRival:   {Plants: []quiz.Category{quiz.Cypress}, Text: "You find them numb; they find you theatrical."},
		},
		Similar: Scent{Name: "Light of Dawn", Text: "Sunny and present, like the part of you reaching outward."},
		Balance: Scent{Name: "Peaceful Night", Text: "When your light burns too bright, it walks you safely back to bed."},
	},
}
