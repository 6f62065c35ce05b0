package models

import (
	"time"
)

// Country represents the countries table
type Country struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"column:name;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Country
func (Country) TableName() string {
	return "countries"
}

// State represents the states table
type State struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CountryID uint      `json:"country_id" gorm:"column:country_id;index"`
	Name      string    `json:"name" gorm:"column:name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for State
func (State) TableName() string {
	return "states"
}

// City represents the cities table
type City struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	StateID   uint      `json:"state_id" gorm:"column:state_id;index"`
	Name      string    `json:"name" gorm:"column:name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for City
func (City) TableName() string {
	return "cities"
}

// Bank represents the banks table
type Bank struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"column:name;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Bank
func (Bank) TableName() string {
	return "banks"
}

// Airline represents the airlines table
type Airline struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"column:name;uniqueIndex"`
	Code      *string   `json:"code" gorm:"column:code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Airline
func (Airline) TableName() string {
	return "airlines"
}
