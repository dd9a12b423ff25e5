package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	statements := []string{
		// Listagem de leads por data e busca por telefone
		"CREATE INDEX IF NOT EXISTS idx_form_pacientes_created_at ON form_pacientes (created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_form_pacientes_nome_lower ON form_pacientes (lower(nome))",

		// Contagens que alimentam o status do lead
		"CREATE INDEX IF NOT EXISTS idx_form_followups_paciente_data ON form_followups (paciente_id, data_envio DESC)",
		"CREATE INDEX IF NOT EXISTS idx_form_conversoes_paciente_data ON form_conversoes (paciente_id, data_conversao DESC)",

		// Agregações por núcleo no dashboard
		"CREATE INDEX IF NOT EXISTS idx_form_interesses_nucleo_paciente ON form_interesses (nucleo_id, paciente_id)",
		"CREATE INDEX IF NOT EXISTS idx_form_followups_nucleo ON form_followups (nucleo_id)",

		// Formulário do totem
		"CREATE INDEX IF NOT EXISTS idx_form_perguntas_ativo_ordem ON form_perguntas (ativo, ordem)",
		"CREATE INDEX IF NOT EXISTS idx_form_opcoes_pergunta_ordem ON form_opcoes (pergunta_id, ordem)",
		"CREATE INDEX IF NOT EXISTS idx_form_respostas_paciente ON form_respostas (paciente_id)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
