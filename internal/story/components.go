package story

// Action is a single thing an enemy does.
type Action struct {
	Value string
}

// ActionList is the repertoire a hero picks moves from.
type ActionList struct {
	Value []string
}

type Enemy struct {
	Name string
}

type Hero struct {
	Name string
}

// City is where an enemy is causing trouble.
type City struct {
	Name string
}

// MediaSource reports the outcome of the day.
type MediaSource struct {
	Name  string
	Intro string
}

// Args are the per-dispatch parameters shared by every story system.
type Args struct {
	Hero  string
	City  string
	Media string
}
