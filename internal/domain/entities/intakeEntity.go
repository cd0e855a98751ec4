package entities

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is a single conversation entry. Immutable once appended.
type Message struct {
	Role    string `json:"role" bson:"role"`
	Content string `json:"content" bson:"content"`
}

// Session holds the ordered conversation history for one intake dialogue.
// The history is replaced wholesale after every turn.
type Session struct {
	ID        string    `json:"session_id" bson:"_id"`
	History   []Message `json:"history" bson:"history"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Record is a completed insurance application. Insert-only; the licence
// plate is the de-duplication key but uniqueness is not enforced here.
type Record struct {
	LicencePlate string         `json:"licence_plate" bson:"licence_plate"`
	FormData     map[string]any `json:"form_data" bson:"form_data"`
	PromptUsed   string         `json:"prompt_used" bson:"prompt_used"`
	CreatedAt    time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" bson:"updated_at"`
}

// VehicleInfo is the structured extraction the intake agent produces each
// turn. Fields are filled progressively and are only guaranteed complete
// when Complete is true. The jsonschema tags drive the tool schema the
// model is forced to answer with.
type VehicleInfo struct {
	Reasoning           string `json:"reasoning" jsonschema:"description=Short reasoning about what is known and what is still missing,required"`
	NextQuestion        string `json:"next_question" jsonschema:"description=The next question to ask the user. Must be set whenever complete is false"`
	CarType             string `json:"car_type" jsonschema:"description=Vehicle category,enum=Sedan,enum=Coupe,enum=Station Wagon,enum=Hatchback,enum=Minivan"`
	LicencePlateNumber  string `json:"licence_plate_number" jsonschema:"description=The vehicle licence plate number"`
	ManufacturerOrBrand string `json:"manufacturer_or_brand" jsonschema:"description=Vehicle manufacturer or brand"`
	YearOfConstruction  string `json:"year_of_construction" jsonschema:"description=Year the vehicle was constructed"`
	Complete            bool   `json:"complete" jsonschema:"description=True once every field has been collected from the user,required"`
	Birthdate           string `json:"birthdate" jsonschema:"description=Applicant birthdate"`
	Name                string `json:"name" jsonschema:"description=Applicant full name"`
}
