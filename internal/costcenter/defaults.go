package costcenter

import "github.com/clubledger-dev/clubledger/internal/model"

// DefaultChart returns the default chart of cost centers for a sports club.
func DefaultChart() []model.CostCenter {
	return []model.CostCenter{
		{ID: "mensalidades", Name: "Mensalidades", Classification: model.ClassReceita, Description: "Member monthly fees"},
		{ID: "inscricoes", Name: "Inscrições", Classification: model.ClassReceita, Description: "Season and event registration fees"},
		{ID: "eventos", Name: "Eventos", Classification: model.ClassReceita, Description: "Tournaments and club events"},
		{ID: "merchandising", Name: "Merchandising", Classification: model.ClassReceita, Description: "Equipment and merchandise sales"},
		{ID: "patrocinios", Name: "Patrocínios", Classification: model.ClassReceita, Description: "Sponsorship income"},
		{ID: "subsidios", Name: "Subsídios", Classification: model.ClassReceita, Description: "Municipal and federation grants"},
		{ID: "instalacoes", Name: "Instalações", Classification: model.ClassDespesa, Description: "Venue rental and maintenance"},
		{ID: "equipamento", Name: "Equipamento", Classification: model.ClassDespesa, Description: "Sports equipment purchases"},
		{ID: "deslocacoes", Name: "Deslocações", Classification: model.ClassDespesa, Description: "Away game travel costs"},
		{ID: "arbitragens", Name: "Arbitragens", Classification: model.ClassDespesa, Description: "Referee and federation fees"},
		{ID: "seguros", Name: "Seguros", Classification: model.ClassDespesa, Description: "Athlete and venue insurance"},
		{ID: "administrativo", Name: "Administrativo", Classification: model.ClassDespesa, Description: "Bank charges and office costs"},
	}
}
