package cmd

type Config struct {
	HTTPPort                  string
	DBHost                    string
	DBPort                    string
	DBUser                    string
	DBPassword                string
	DBName                    string
	DBSslMode                 string
	ShiprocketBaseURL         string
	ShiprocketEmail           string
	ShiprocketPassword        string
	ShiprocketTokenTTL        string
	JWTSecret                 string
	JWTTTL                    string
	ReconciliationGracePeriod string
	ReconciliationSchedule    string
	SeedAdminUsername         string
	SeedAdminPassword         string
}
