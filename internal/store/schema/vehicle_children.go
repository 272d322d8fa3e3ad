package schema

import "time"

// VehicleSpecification represents the vehicle_specifications table -
// key/value spec rows (e.g., "horsepower" = "450")
type VehicleSpecification struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	VehicleID string    `gorm:"column:vehicle_id;not null;type:uuid;index:idx_vehicle_specs_vehicle_category,priority:1"`
	Category  string    `gorm:"column:category;type:text;index:idx_vehicle_specs_vehicle_category,priority:2"`
	Name      string    `gorm:"column:name;not null;type:text"`
	Value     string    `gorm:"column:value;not null;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the VehicleSpecification model
func (VehicleSpecification) TableName() string {
	return "vehicle_specifications"
}

// VehicleLink represents the vehicle_links table - external links attached
// to a vehicle profile
type VehicleLink struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	VehicleID string    `gorm:"column:vehicle_id;not null;type:uuid;index"`
	Title     string    `gorm:"column:title;not null;type:text"`
	URL       string    `gorm:"column:url;not null;type:text"`
	LinkType  string    `gorm:"column:link_type;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the VehicleLink model
func (VehicleLink) TableName() string {
	return "vehicle_links"
}

// VehicleVideo represents the vehicle_videos table
type VehicleVideo struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey"`
	VehicleID   string    `gorm:"column:vehicle_id;not null;type:uuid;index"`
	Title       string    `gorm:"column:title;type:text"`
	URL         string    `gorm:"column:url;not null;type:text"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the VehicleVideo model
func (VehicleVideo) TableName() string {
	return "vehicle_videos"
}
