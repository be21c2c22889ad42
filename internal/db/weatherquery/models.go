package weatherquery

import (
	"time"
)

type WeatherQuery struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	City         string    `json:"city" gorm:"index:idx_city;index:idx_city_created_at"`
	DisplayName  string    `json:"display_name" gorm:"column:display_name"`
	Latitude     float64   `json:"latitude" gorm:"column:latitude"`
	Longitude    float64   `json:"longitude" gorm:"column:longitude"`
	TemperatureC float64   `json:"temperature_c" gorm:"column:temperature_c"`
	WeatherCode  int       `json:"weather_code" gorm:"column:weather_code"`
	Outcome      string    `json:"outcome" gorm:"column:outcome;index:idx_outcome"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_city_created_at"`
}

func (WeatherQuery) TableName() string {
	return "weather_queries"
}
