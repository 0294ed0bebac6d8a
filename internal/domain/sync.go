package domain

import "fmt"

// SyncRequest são os parâmetros de uma execução de sincronização
type SyncRequest struct {
	UserID      int64
	AdAccountID string
	AccessToken string
	DatePreset  string
}

// SyncSummary resume o resultado de uma execução de sincronização
type SyncSummary struct {
	Creatives       int
	PerformanceRows int
	Skipped         int
}

// Message monta o resumo legível devolvido ao disparador do sync
func (s *SyncSummary) Message() string {
	if s.Creatives == 0 && s.PerformanceRows == 0 && s.Skipped == 0 {
		return "Nenhum dado para sincronizar"
	}

	msg := fmt.Sprintf("Sincronizados %d criativos e %d linhas diárias", s.Creatives, s.PerformanceRows)
	if s.Skipped > 0 {
		msg += fmt.Sprintf(" (%d linhas ignoradas)", s.Skipped)
	}

	return msg
}
