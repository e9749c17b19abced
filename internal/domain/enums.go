package domain

type FloorType string

const (
	FloorTypeFloor FloorType = "floor"
	FloorTypeRow   FloorType = "row"
)

type PropertyType string

const (
	PropertyApartment  PropertyType = "apartment"
	PropertyVilla      PropertyType = "villa"
	PropertyApartVilla PropertyType = "apart-villa"
	PropertyTownhouse  PropertyType = "townhouse"
	PropertyPenthouse  PropertyType = "penthouse"
)

// Rooms is the bedroom count label; "studio" or "1".."6".
type Rooms string

const RoomsStudio Rooms = "studio"

type UnitStatus string

const (
	UnitFree   UnitStatus = "free"
	UnitBooked UnitStatus = "booked"
	UnitSold   UnitStatus = "sold"
)

type View string

const (
	ViewNone     View = ""
	ViewSea      View = "sea"
	ViewOcean    View = "ocean"
	ViewJungle   View = "jungle"
	ViewGarden   View = "garden"
	ViewPool     View = "pool"
	ViewMountain View = "mountain"
	ViewRiver    View = "river"
	ViewCity     View = "city"
)

type Side string

const (
	SideNone  Side = ""
	SideNorth Side = "north"
	SideSouth Side = "south"
	SideEast  Side = "east"
	SideWest  Side = "west"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleDeveloper Role = "developer"
	RoleAgent     Role = "agent"
)

// InventoryRoles are the roles notified about chessboard activity.
var InventoryRoles = []Role{RoleAdmin, RoleModerator}

type HistoryAction string

const (
	ActionCreate HistoryAction = "create"
	ActionUpdate HistoryAction = "update"
	ActionDelete HistoryAction = "delete"
)

// Choice lists in display order. Pickers and import checks read these; the
// validator tags on Unit accept exactly the same values.
var (
	PropertyTypes = []PropertyType{PropertyApartment, PropertyVilla, PropertyApartVilla, PropertyTownhouse, PropertyPenthouse}
	RoomChoices   = []Rooms{RoomsStudio, "1", "2", "3", "4", "5", "6"}
	UnitStatuses  = []UnitStatus{UnitFree, UnitBooked, UnitSold}
	FloorTypes    = []FloorType{FloorTypeFloor, FloorTypeRow}
	Views         = []View{ViewNone, ViewSea, ViewOcean, ViewJungle, ViewGarden, ViewPool, ViewMountain, ViewRiver, ViewCity}
	Sides         = []Side{SideNone, SideNorth, SideSouth, SideEast, SideWest}
)
