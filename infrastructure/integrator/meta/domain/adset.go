package metadomain

import (
	"strconv"

	"github.com/alikitto/ad-dash/pkg/utils"
	"github.com/sirupsen/logrus"
)

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdsetInsight é a linha de resumo de um conjunto retornada pelo endpoint de
// insights com level=adset. Os campos numéricos chegam como string.
type AdsetInsight struct {
	AccountID    string   `json:"account_id"`
	AccountName  string   `json:"account_name"`
	AdsetID      string   `json:"adset_id"`
	AdsetName    string   `json:"adset_name"`
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	Objective    string   `json:"objective"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Frequency    string   `json:"frequency"`
	CTR          string   `json:"ctr"`
	LinkClicks   string   `json:"inline_link_clicks"`
	Actions      []Action `json:"actions"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
}

// GetLeads soma as ações de geração de lead da linha
func (a *AdsetInsight) GetLeads() int {
	total := 0

	for i := range a.Actions {
		action := a.Actions[i]
		if action.ActionType != "lead" && action.ActionType != "onsite_conversion.lead_grouped" {
			continue
		}

		value, err := strconv.Atoi(action.Value)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao converter valor da ação de lead")
			continue
		}

		total += value
	}

	return total
}

// GetSpend converte o gasto textual da linha para float64
func (a *AdsetInsight) GetSpend() float64 {
	spend, err := strconv.ParseFloat(a.Spend, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id":    a.AdsetID,
			"spend_value": a.Spend,
		}).Warn("Erro ao converter gasto para float")
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(spend)
}

// Activity é uma entrada bruta do log de alterações de um objeto de anúncio
type Activity struct {
	EventTime      string `json:"event_time"`
	EventType      string `json:"event_type"`
	TranslatedName string `json:"translated_event_type"`
	ActorName      string `json:"actor_name"`
	ExtraData      string `json:"extra_data"`
	ObjectID       string `json:"object_id"`
	ObjectName     string `json:"object_name"`
}

// DailyInsight é uma amostra de gasto diário do endpoint de insights com
// time_increment=1
type DailyInsight struct {
	Spend     string `json:"spend"`
	DateStart string `json:"date_start"`
	DateStop  string `json:"date_stop"`
}
