package models

type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeOnSite WorkMode = "on_site"
)

func (w WorkMode) IsValid() bool {
	return w == WorkModeRemote || w == WorkModeHybrid || w == WorkModeOnSite
}

type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusWon      ProjectStatus = "won"
	ProjectStatusLost     ProjectStatus = "lost"
	ProjectStatusArchived ProjectStatus = "archived"
)

type SourceType string

const (
	SourceTypeJobBoard      SourceType = "job_board"
	SourceTypeSocialNetwork SourceType = "social_network"
	SourceTypeCooptation    SourceType = "cooptation"
	SourceTypeDirect        SourceType = "direct"
	SourceTypeOther         SourceType = "other"
)
