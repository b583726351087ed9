package entities

// RoomType is the closed set of rooms the studio quotes for.
type RoomType string

const (
	RoomTypeLivingRoom RoomType = "LIVING_ROOM"
	RoomTypeBedroom    RoomType = "BEDROOM"
	RoomTypeKitchen    RoomType = "KITCHEN"
	RoomTypeBathroom   RoomType = "BATHROOM"
	RoomTypeDiningRoom RoomType = "DINING_ROOM"
	RoomTypeHomeOffice RoomType = "HOME_OFFICE"
	RoomTypeOther      RoomType = "OTHER"
)

// RoomTypes lists every RoomType in display order.
var RoomTypes = []RoomType{
	RoomTypeLivingRoom,
	RoomTypeBedroom,
	RoomTypeKitchen,
	RoomTypeBathroom,
	RoomTypeDiningRoom,
	RoomTypeHomeOffice,
	RoomTypeOther,
}

func (r RoomType) Valid() bool {
	for _, rt := range RoomTypes {
		if r == rt {
			return true
		}
	}
	return false
}

// RoomDimensions are measured in feet.
type RoomDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

func (d RoomDimensions) Area() float64 {
	return d.Length * d.Width
}
