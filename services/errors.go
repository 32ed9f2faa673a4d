package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidLimit     = errors.New("limit must be a positive number")
	ErrPasswordTooShort = errors.New("password is too short")

	// Ошибки конфликтов
	ErrUsernameConflict           = errors.New("username is already in use")
	ErrPlayerMetricsConflict      = errors.New("player already has a metrics record")
	ErrFootballPredictionConflict = errors.New("match already has a prediction")
	ErrFootballTeamStatConflict   = errors.New("team already has a stats record")

	// Ошибки, специфичные для сущностей
	ErrUserNotFound               = errors.New("user not found")
	ErrPlayerNotFound             = errors.New("player not found")
	ErrPlayerMetricsNotFound      = errors.New("player metrics not found")
	ErrVideoNotFound              = errors.New("video not found")
	ErrF1DriverNotFound           = errors.New("driver not found")
	ErrF1RaceNotFound             = errors.New("race not found")
	ErrFootballTeamNotFound       = errors.New("football team not found")
	ErrFootballMatchNotFound      = errors.New("football match not found")
	ErrFootballPredictionNotFound = errors.New("football prediction not found")
	ErrFootballTeamStatNotFound   = errors.New("football team stats not found")
)
