package domain

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "AVAILABLE"
	RoomStatusOccupied    RoomStatus = "OCCUPIED"
	RoomStatusCleaning    RoomStatus = "CLEANING"
	RoomStatusMaintenance RoomStatus = "MAINTENANCE"
)

type Room struct {
	RoomNo string     `json:"room_no"`
	Type   string     `json:"type"`
	Price  float64    `json:"price"`
	Status RoomStatus `json:"status"`
}

// RoomStats holds the per-status room counters for the comprehensive snapshot.
type RoomStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Cleaning    int `json:"cleaning"`
	Maintenance int `json:"maintenance"`
}
