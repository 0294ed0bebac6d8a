package domain

import "time"

// PerformanceRecord é uma linha da tabela fato de performance diária:
// um anúncio, um dia. CreativeID carrega o ID nativo da plataforma após o
// merge e é substituído pela chave substituta do banco antes da persistência.
// Chave de idempotência: (ad_id, date, user_id).
type PerformanceRecord struct {
	CreativeID   string
	UserID       int64
	AdID         string
	AdName       string
	AdsetID      string
	AdsetName    string
	CampaignID   string
	CampaignName string
	Date         string
	Spend        float64
	Impressions  int
	Clicks       int
	LinkClicks   int
	Purchases    int
	Revenue      float64
	Currency     string
	UpdatedAt    time.Time
}
