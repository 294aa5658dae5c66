package repository

import "time"

// Transaction is keyed by transaction hash. To holds the raw node value when
// it is not a valid address, and Nonce is -1 when the node did not send one.
// Quantities are unbounded decimal strings, so their columns are text.
type Transaction struct {
	ID             string      `gorm:"primaryKey;type:text"`
	BlockNumber    int64       `gorm:"not null;index"`
	From           string      `gorm:"size:42;not null"`
	To             string      `gorm:"type:text;not null"`
	Value          string      `gorm:"type:text;not null"`
	Gas            string      `gorm:"type:text;not null"`
	GasPrice       string      `gorm:"type:text;not null"`
	GasUsed        string      `gorm:"type:text;not null"`
	Nonce          int64       `gorm:"not null"`
	ShardingFlag   string      `gorm:"type:text;not null"`
	SystemContract string      `gorm:"type:text;not null"`
	Via            string      `gorm:"type:text;not null"`
	Date           time.Time   `gorm:"not null"`
	CoinIndex      int         `gorm:"not null"`
	CoinSymbol     string      `gorm:"size:16;not null"`
	CoinName       string      `gorm:"size:64;not null"`
	State          string      `gorm:"size:16;not null;index"`
	Operations     []Operation `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
}

type Operation struct {
	ID              string `gorm:"primaryKey;autoIncrement:false"`
	TransactionID   string `gorm:"type:text;not null;index"`
	Position        int    `gorm:"not null"`
	From            string `gorm:"size:42;not null"`
	To              string `gorm:"size:42;not null"`
	ContractAddress string `gorm:"size:42"`
	Type            string `gorm:"size:32;not null"`
	Value           string `gorm:"type:text;not null"`
	Symbol          string `gorm:"size:16"`
	Name            string `gorm:"size:64"`
	Decimals        int    `gorm:"not null;default:0"`
}
