package models

// Domain models matching the database schema in db/migrations/0001_init.sql

type Account struct {
	UserID           string `json:"user_id" db:"user_id"`
	Email            string `json:"email" db:"email"`
	Name             string `json:"name" db:"name"`
	Type             string `json:"type" db:"type"`
	RegistrationDate int64  `json:"registration_date" db:"registration_date"`
}

// Credential is the stored password hash for an account. It lives in its own
// table, one-to-one with Account, and is never serialized into API responses.
type Credential struct {
	UserID       string `json:"-" db:"user_id"`
	PasswordHash string `json:"-" db:"password_hash"`
	Updated      int64  `json:"-" db:"updated"`
}

// EmissionRecord is one row of the national emissions dataset.
type EmissionRecord struct {
	ID      int64   `json:"id" db:"id"`
	Country string  `json:"country" db:"country"`
	Year    int     `json:"year" db:"year"`
	CO2Kt   float64 `json:"co2_kt" db:"co2_kt"`
}

type Donation struct {
	ID           int64   `json:"id" db:"id"`
	UserID       string  `json:"user_id" db:"user_id"`
	Amount       float64 `json:"amount" db:"amount"`
	Organization string  `json:"organization" db:"organization"`
	DonationDate int64   `json:"donation_date" db:"donation_date"`
}

type FootprintRecord struct {
	ID              int64   `json:"id" db:"id"`
	UserID          string  `json:"user_id" db:"user_id"`
	Footprint       float64 `json:"footprint" db:"footprint"`
	MeasurementDate int64   `json:"measurement_date" db:"measurement_date"`
}
