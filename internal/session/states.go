package session

// States is the fixed list a signup state must be chosen from.
var States = []string{
	"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Bauchi", "Bayelsa",
	"Benue", "Borno", "Cross River", "Delta", "Ebonyi", "Edo",
	"Ekiti", "Enugu", "Gombe", "Imo", "Jigawa", "Kaduna",
	"Kano", "Katsina", "Kebbi", "Kogi", "Kwara", "Lagos",
	"Nasarawa", "Niger", "Ogun", "Ondo", "Osun", "Oyo",
	"Plateau", "Rivers", "Sokoto", "Taraba", "Yobe", "Zamfara",
	"FCT Abuja",
}

// ValidState reports whether s is on the fixed list.
func ValidState(s string) bool {
	for _, state := range States {
		if state == s {
			return true
		}
	}
	return false
}
