package migrations

import (
	"gorm.io/gorm"
)

// O status segue a mesma regra de entities.ClassifyLead
const leadsView = `
CREATE OR REPLACE VIEW form_leads_view AS
SELECT
	p.id,
	p.nome,
	p.whatsapp,
	p.whatsapp_formatado,
	p.created_at,
	COALESCE(f.total, 0) AS total_followups,
	COALESCE(c.total, 0) AS total_conversoes,
	CASE
		WHEN COALESCE(c.total, 0) > 0 THEN 'convertido'
		WHEN COALESCE(f.total, 0) = 0 THEN 'aguardando'
		WHEN f.total = 1 THEN '1_mensagem'
		WHEN f.total = 2 THEN '2_mensagens'
		ELSE '3_mais_mensagens'
	END AS status,
	COALESCE(c.total, 0) > 0 AS convertido,
	c.nucleo_id AS nucleo_convertido,
	c.data_conversao
FROM form_pacientes p
LEFT JOIN (
	SELECT paciente_id, COUNT(*) AS total
	FROM form_followups
	GROUP BY paciente_id
) f ON f.paciente_id = p.id
LEFT JOIN (
	SELECT DISTINCT ON (paciente_id)
		paciente_id,
		nucleo_id,
		data_conversao,
		COUNT(*) OVER (PARTITION BY paciente_id) AS total
	FROM form_conversoes
	ORDER BY paciente_id, data_conversao DESC
) c ON c.paciente_id = p.id`

const dashboardView = `
CREATE OR REPLACE VIEW form_dashboard_view AS
SELECT
	n.id AS nucleo_id,
	n.nome AS nucleo_nome,
	n.slug AS nucleo_slug,
	n.cor AS nucleo_cor,
	n.ordem,
	COALESCE(i.total, 0) AS total_interessados,
	COALESCE(f.total, 0) AS total_followups,
	COALESCE(c.total, 0) AS total_conversoes,
	COALESCE(c.valor, 0) AS valor_convertido,
	CASE
		WHEN COALESCE(i.total, 0) > 0 THEN ROUND(COALESCE(c.total, 0)::numeric / i.total * 100, 2)
		ELSE 0
	END AS taxa_conversao
FROM form_nucleos n
LEFT JOIN (
	SELECT nucleo_id, COUNT(DISTINCT paciente_id) AS total
	FROM form_interesses
	GROUP BY nucleo_id
) i ON i.nucleo_id = n.id
LEFT JOIN (
	SELECT nucleo_id, COUNT(*) AS total
	FROM form_followups
	GROUP BY nucleo_id
) f ON f.nucleo_id = n.id
LEFT JOIN (
	SELECT nucleo_id, COUNT(*) AS total, SUM(valor) AS valor
	FROM form_conversoes
	GROUP BY nucleo_id
) c ON c.nucleo_id = n.id
WHERE n.ativo = true`

// CreateViews (re)cria as views de leitura usadas pelo painel
func CreateViews(db *gorm.DB) error {
	for _, view := range []string{leadsView, dashboardView} {
		if err := db.Exec(view).Error; err != nil {
			return err
		}
	}
	return nil
}
