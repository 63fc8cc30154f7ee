// seed puebla la base con una organización demo, dos usuarios y datos CRM de
// ejemplo (cuentas, contactos, deals y actividades).
//
// Uso: go run ./cmd/seed
// Credenciales demo: admin@crm.com / admin123 y user@crm.com / user123.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/crm-pro/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	dealRepo := postgres.NewDealRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)

	org := &entity.Organization{Name: "Demo Organization", Plan: entity.PlanPro}
	if err := orgRepo.Create(org); err != nil {
		fail("crear organización: %v", err)
	}
	fmt.Println("Organización:", org.Name)

	users := []struct {
		name, email, password, role string
	}{
		{"Admin User", "admin@crm.com", "admin123", entity.RoleAdmin},
		{"Regular User", "user@crm.com", "user123", entity.RoleUser},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			fail("hash de password: %v", err)
		}
		user := &entity.User{
			OrganizationID: org.ID,
			Email:          u.email,
			PasswordHash:   string(hash),
			Name:           u.name,
			Role:           u.role,
		}
		if err := userRepo.Create(user); err != nil {
			fail("crear usuario %s: %v", u.email, err)
		}
		fmt.Println("Usuario:", user.Email)
	}

	accountsData := []entity.Account{
		{Name: "Acme Corporation", Industry: "Technology", Website: "https://acme.com", Address: "Mumbai, India"},
		{Name: "Global Industries", Industry: "Manufacturing", Website: "https://global-ind.com", Address: "Delhi, India"},
		{Name: "Tech Innovators", Industry: "Software", Website: "https://techinnovators.io", Address: "Bangalore, India"},
		{Name: "Sunrise Enterprises", Industry: "Retail", Website: "https://sunrise.in", Address: "Chennai, India"},
		{Name: "Digital Solutions", Industry: "IT Services", Website: "https://digitalsol.com", Address: "Hyderabad, India"},
	}
	accounts := make([]*entity.Account, 0, len(accountsData))
	for i := range accountsData {
		a := accountsData[i]
		a.OrganizationID = org.ID
		if err := accountRepo.Create(&a); err != nil {
			fail("crear cuenta %s: %v", a.Name, err)
		}
		accounts = append(accounts, &a)
	}
	fmt.Println("Cuentas demo creadas")

	contactsData := []struct {
		name, email, phone, title string
		account                   int
	}{
		{"Rahul Sharma", "rahul@acme.com", "+91 98765 43210", "CEO", 0},
		{"Priya Patel", "priya@global-ind.com", "+91 98765 43211", "CTO", 1},
		{"Amit Kumar", "amit@techinnovators.io", "+91 98765 43212", "VP Sales", 2},
		{"Sneha Gupta", "sneha@sunrise.in", "+91 98765 43213", "Manager", 3},
		{"Vikram Singh", "vikram@digitalsol.com", "+91 98765 43214", "Director", 4},
		{"Anita Desai", "anita@acme.com", "+91 98765 43215", "CFO", 0},
	}
	for _, c := range contactsData {
		accountID := accounts[c.account].ID
		contact := &entity.Contact{
			OrganizationID: org.ID,
			AccountID:      &accountID,
			Name:           c.name,
			Email:          c.email,
			Phone:          c.phone,
			Title:          c.title,
		}
		if err := contactRepo.Create(contact); err != nil {
			fail("crear contacto %s: %v", c.email, err)
		}
	}
	fmt.Println("Contactos demo creados")

	dealsData := []struct {
		title   string
		value   int64
		stage   entity.Stage
		account int
		prob    float64
		insight string
	}{
		{"Enterprise License Deal", 500000, entity.StageWon, 0, 1.0, "Deal closed successfully!"},
		{"Cloud Migration Project", 750000, entity.StageNegotiation, 1, 0.7, "High probability - focus on closing."},
		{"Software Development Contract", 300000, entity.StageNew, 2, 0.5, "Standard deal progress."},
		{"Annual Maintenance Contract", 150000, entity.StageWon, 3, 1.0, "Recurring revenue secured."},
		{"Digital Transformation", 1200000, entity.StageNegotiation, 4, 0.6, "High value deal - requires executive attention."},
		{"Security Audit Services", 200000, entity.StageNew, 0, 0.4, "New opportunity identified."},
		{"Data Analytics Platform", 450000, entity.StageWon, 1, 1.0, "Successfully delivered."},
		{"Mobile App Development", 350000, entity.StageLost, 2, 0.0, "Lost to competitor."},
		{"ERP Implementation", 800000, entity.StageNegotiation, 3, 0.65, "In final negotiation stage."},
		{"IT Infrastructure Setup", 250000, entity.StageNew, 4, 0.3, "Early stage opportunity."},
	}
	for _, d := range dealsData {
		deal := &entity.Deal{
			OrganizationID: org.ID,
			AccountID:      accounts[d.account].ID,
			Title:          d.title,
			Value:          decimal.NewFromInt(d.value),
			Stage:          d.stage,
			WinProbability: d.prob,
			AIInsight:      d.insight,
		}
		if err := dealRepo.Create(deal); err != nil {
			fail("crear deal %s: %v", d.title, err)
		}
	}
	fmt.Println("Deals demo creados")

	activitiesData := []struct{ action, target string }{
		{"Created deal", "Enterprise License Deal"},
		{"Updated deal", "Cloud Migration Project (Negotiation)"},
		{"Added new contact", "Rahul Sharma"},
		{"Created account", "Acme Corporation"},
		{"Won deal", "Annual Maintenance Contract"},
		{"Created deal", "Digital Transformation"},
		{"Added new contact", "Priya Patel"},
		{"Updated account", "Tech Innovators"},
		{"Created deal", "Security Audit Services"},
		{"Lost deal", "Mobile App Development"},
	}
	for _, a := range activitiesData {
		activity := &entity.Activity{
			OrganizationID: org.ID,
			Action:         a.action,
			Target:         a.target,
		}
		if err := activityRepo.Create(activity); err != nil {
			fail("crear actividad %s: %v", a.target, err)
		}
	}
	fmt.Println("Actividades demo creadas")

	fmt.Println("Seed completado")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
