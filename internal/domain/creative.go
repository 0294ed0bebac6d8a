package domain

// PlatformMeta identifica a origem dos criativos sincronizados
const PlatformMeta = "meta"

// CreativeRecord é o registro de dimensão de um criativo, único por ID
// nativo da plataforma. Quando o mesmo ID aparece mais de uma vez na mesma
// execução, os atributos buscados por último prevalecem.
type CreativeRecord struct {
	ID               string
	Name             string
	ThumbnailURL     string
	Body             string
	Title            string
	CallToActionType string
	Platform         string
}
