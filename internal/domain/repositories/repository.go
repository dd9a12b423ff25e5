package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound é devolvido quando o registro não existe
var ErrNotFound = errors.New("registro não encontrado")

// Chaves do cache compartilhado pelos repositórios do formulário
const (
	cacheKeyActiveQuestions   = "form:questions:active"
	cacheKeyActiveSpecialties = "form:specialties:active"
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// deleted converte um DELETE/UPDATE sem linhas afetadas em ErrNotFound
func deleted(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
