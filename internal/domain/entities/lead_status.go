package entities

// LeadStatus é o estágio do lead no funil de endomarketing.
// Nunca é persistido: sempre derivado das contagens de followups e conversões.
type LeadStatus string

const (
	LeadStatusAwaiting    LeadStatus = "aguardando"
	LeadStatusOneMessage  LeadStatus = "1_mensagem"
	LeadStatusTwoMessages LeadStatus = "2_mensagens"
	LeadStatusThreePlus   LeadStatus = "3_mais_mensagens"
	LeadStatusConverted   LeadStatus = "convertido"
)

// LeadStatuses lista os estágios na ordem do funil
func LeadStatuses() []LeadStatus {
	return []LeadStatus{
		LeadStatusAwaiting,
		LeadStatusOneMessage,
		LeadStatusTwoMessages,
		LeadStatusThreePlus,
		LeadStatusConverted,
	}
}

// ClassifyLead calcula o status. Conversão tem precedência sobre qualquer
// contagem de mensagens; contagens negativas valem como zero.
func ClassifyLead(followups, conversions int64) LeadStatus {
	if conversions >= 1 {
		return LeadStatusConverted
	}
	switch {
	case followups <= 0:
		return LeadStatusAwaiting
	case followups == 1:
		return LeadStatusOneMessage
	case followups == 2:
		return LeadStatusTwoMessages
	default:
		return LeadStatusThreePlus
	}
}

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusAwaiting, LeadStatusOneMessage, LeadStatusTwoMessages, LeadStatusThreePlus, LeadStatusConverted:
		return true
	default:
		return false
	}
}

// Label é o texto exibido no painel
func (s LeadStatus) Label() string {
	switch s {
	case LeadStatusAwaiting:
		return "Aguardando contato"
	case LeadStatusOneMessage:
		return "1 mensagem enviada"
	case LeadStatusTwoMessages:
		return "2 mensagens enviadas"
	case LeadStatusThreePlus:
		return "3+ mensagens enviadas"
	case LeadStatusConverted:
		return "Convertido"
	default:
		return string(s)
	}
}
