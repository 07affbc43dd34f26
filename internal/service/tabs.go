package service

import (
	"strconv"

	"github.com/topraga-donus/backend/internal/domain"
)

// Tab is one UI-selectable context in the admin console, mapped 1:1 to a
// backend table and row schema. Defaults is a pure function producing the
// values injected for fields the form left unset; SetupSQL is the copyable
// remediation statement shown when the table does not exist.
type Tab struct {
	Key        string                `json:"key"`
	Title      string                `json:"title"`
	Table      string                `json:"-"`
	OrderBy    string                `json:"-"`
	ImageField string                `json:"-"`
	Defaults   func() map[string]any `json:"-"`
	SetupSQL   string                `json:"-"`
}

// Tabs returns the admin console tabs in display order.
//
// The compost log tab orders by measurement date; every other tab orders by
// creation time. All tabs store their image URL under "image_url" except the
// blog, whose historical column is named "image" — that asymmetry is part of
// the table contract and must not be normalized away on the write path.
func Tabs() []Tab {
	return []Tab{
		{
			Key: "waste_items", Title: "Atık Kataloğu",
			Table: "waste_items", OrderBy: "created_at", ImageField: "image_url",
			Defaults: func() map[string]any {
				return map[string]any{"category": string(domain.WasteGreen), "compostable": true}
			},
			SetupSQL: setupWasteItems,
		},
		{
			Key: "stations", Title: "İstasyonlar",
			Table: "stations", OrderBy: "created_at", ImageField: "image_url",
			Defaults: func() map[string]any {
				return map[string]any{"kind": string(domain.StationOrganic), "verified": false}
			},
			SetupSQL: setupStations,
		},
		{
			Key: "project_images", Title: "Galeri",
			Table: "project_images", OrderBy: "created_at", ImageField: "image_url",
			Defaults: func() map[string]any {
				return map[string]any{"category": string(domain.GalleryPoster)}
			},
			SetupSQL: setupProjectImages,
		},
		{
			Key: "compost_logs", Title: "Kompost Günlüğü",
			Table: "compost_logs", OrderBy: "log_date", ImageField: "image_url",
			Defaults: func() map[string]any {
				return map[string]any{"arm": string(domain.ArmControl)}
			},
			SetupSQL: setupCompostLogs,
		},
		{
			Key: "suggestions", Title: "Öneriler",
			Table: "suggestions", OrderBy: "created_at", ImageField: "image_url",
			Defaults: func() map[string]any {
				return map[string]any{"kind": string(domain.SuggestionIdea), "status": string(domain.StatusPending)}
			},
			SetupSQL: setupSuggestions,
		},
		{
			Key: "school_registrations", Title: "Okul Kayıtları",
			Table: "school_registrations", OrderBy: "created_at", ImageField: "image_url",
			Defaults: func() map[string]any {
				return map[string]any{"status": string(domain.StatusPending)}
			},
			SetupSQL: setupSchoolRegistrations,
		},
		{
			Key: "blog_posts", Title: "Blog",
			Table: "blog_posts", OrderBy: "created_at", ImageField: "image",
			Defaults: func() map[string]any {
				return map[string]any{"author": domain.DefaultBlogAuthor, "published": true}
			},
			SetupSQL: setupBlogPosts,
		},
	}
}

// tabByKey looks a tab up in the registry.
func tabByKey(key string) (Tab, bool) {
	for _, tab := range Tabs() {
		if tab.Key == key {
			return tab, true
		}
	}
	return Tab{}, false
}

// Column typing for form-value coercion. Admin forms submit every field as a
// string; these sets decide which fields are converted before insert.
var (
	boolColumns  = map[string]bool{"compostable": true, "verified": true, "featured": true, "published": true}
	intColumns   = map[string]bool{"leaf_count": true, "student_count": true}
	floatColumns = map[string]bool{"lat": true, "lng": true, "plant_height": true}
)

// CoerceField converts a raw form value into the Go type the named column
// expects. Unparseable values pass through as strings so the backend reports
// the real error instead of a silent zero.
func CoerceField(name, raw string) any {
	switch {
	case boolColumns[name]:
		// Checkboxes submit "on"; JSON-ish forms submit "true"/"false".
		return raw == "true" || raw == "on" || raw == "1"
	case intColumns[name]:
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	case floatColumns[name]:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	return raw
}

// Remediation SQL per tab, shown verbatim in the table-missing state.
// Keep these in sync with the migrations.
const (
	setupWasteItems = `CREATE TABLE IF NOT EXISTS waste_items (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    name text NOT NULL,
    category text NOT NULL DEFAULT 'green',
    compostable boolean NOT NULL DEFAULT true,
    preparation text NOT NULL DEFAULT '',
    method text NOT NULL DEFAULT '',
    reason text NOT NULL DEFAULT '',
    icon text NOT NULL DEFAULT '',
    image_url text NOT NULL DEFAULT '',
    created_at timestamptz NOT NULL DEFAULT now()
);`

	setupStations = `CREATE TABLE IF NOT EXISTS stations (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    name text NOT NULL,
    kind text NOT NULL DEFAULT 'organic',
    lat double precision NOT NULL DEFAULT 0,
    lng double precision NOT NULL DEFAULT 0,
    verified boolean NOT NULL DEFAULT false,
    distance text NOT NULL DEFAULT '',
    image_url text NOT NULL DEFAULT '',
    created_at timestamptz NOT NULL DEFAULT now()
);`

	setupProjectImages = `CREATE TABLE IF NOT EXISTS project_images (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    title text NOT NULL,
    category text NOT NULL DEFAULT 'poster',
    image_url text NOT NULL DEFAULT '',
    created_at timestamptz NOT NULL DEFAULT now()
);`

	setupCompostLogs = `CREATE TABLE IF NOT EXISTS compost_logs (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    log_date date NOT NULL DEFAULT CURRENT_DATE,
    arm text NOT NULL DEFAULT 'control',
    plant_height double precision NOT NULL DEFAULT 0,
    leaf_count integer NOT NULL DEFAULT 0,
    notes text NOT NULL DEFAULT '',
    created_at timestamptz NOT NULL DEFAULT now()
);`

	setupSuggestions = `CREATE TABLE IF NOT EXISTS suggestions (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    kind text NOT NULL DEFAULT 'idea',
    name text NOT NULL DEFAULT '',
    location text NOT NULL DEFAULT '',
    description text NOT NULL DEFAULT '',
    image_url text NOT NULL DEFAULT '',
    status text NOT NULL DEFAULT 'pending',
    sender_name text NOT NULL DEFAULT '',
    created_at timestamptz NOT NULL DEFAULT now()
);`

	setupSchoolRegistrations = `CREATE TABLE IF NOT EXISTS school_registrations (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    school_name text NOT NULL,
    city text NOT NULL DEFAULT '',
    district text NOT NULL DEFAULT '',
    teacher_name text NOT NULL DEFAULT '',
    email text NOT NULL DEFAULT '',
    phone text NOT NULL DEFAULT '',
    student_count integer NOT NULL DEFAULT 0,
    activities text[] NOT NULL DEFAULT '{}',
    status text NOT NULL DEFAULT 'pending',
    created_at timestamptz NOT NULL DEFAULT now()
);`

	setupBlogPosts = `CREATE TABLE IF NOT EXISTS blog_posts (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    title text NOT NULL,
    excerpt text NOT NULL DEFAULT '',
    content text NOT NULL DEFAULT '',
    category text NOT NULL DEFAULT 'compost',
    image text NOT NULL DEFAULT '',
    author text NOT NULL DEFAULT '',
    read_time text NOT NULL DEFAULT '',
    featured boolean NOT NULL DEFAULT false,
    published boolean NOT NULL DEFAULT true,
    created_at timestamptz NOT NULL DEFAULT now()
);`
)
