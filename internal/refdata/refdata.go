// Package refdata holds the static reference tables: scripture verses,
// country/currency catalogs, the four reset goals and the default budget
// categories. Pure data, no storage.
package refdata

// Scripture is a verse tagged with a theme so it can be matched to a user's
// reset goal.
type Scripture struct {
	ID        string `json:"id"`
	Verse     string `json:"verse"`
	Reference string `json:"reference"`
	Theme     string `json:"theme"` // stewardship | discipline | generosity | peace | wisdom | diligence
}

var Scriptures = []Scripture{
	{ID: "s1", Verse: "Bring the whole tithe into the storehouse, that there may be food in my house.", Reference: "Malachi 3:10", Theme: "generosity"},
	{ID: "s2", Verse: "Honor the Lord with your wealth, with the firstfruits of all your crops.", Reference: "Proverbs 3:9", Theme: "stewardship"},
	{ID: "s3", Verse: "The plans of the diligent lead to profit as surely as haste leads to poverty.", Reference: "Proverbs 21:5", Theme: "diligence"},
	{ID: "s4", Verse: "Do not be anxious about anything, but in every situation, by prayer and petition, present your requests to God.", Reference: "Philippians 4:6", Theme: "peace"},
	{ID: "s5", Verse: "For I know the plans I have for you, plans to prosper you and not to harm you.", Reference: "Jeremiah 29:11", Theme: "peace"},
	{ID: "s6", Verse: "Whoever can be trusted with very little can also be trusted with much.", Reference: "Luke 16:10", Theme: "stewardship"},
	{ID: "s7", Verse: "The generous will themselves be blessed, for they share their food with the poor.", Reference: "Proverbs 22:9", Theme: "generosity"},
	{ID: "s8", Verse: "Lazy hands make for poverty, but diligent hands bring wealth.", Reference: "Proverbs 10:4", Theme: "diligence"},
	{ID: "s9", Verse: "If any of you lacks wisdom, you should ask God, who gives generously to all.", Reference: "James 1:5", Theme: "wisdom"},
	{ID: "s10", Verse: "For the love of money is a root of all kinds of evil.", Reference: "1 Timothy 6:10", Theme: "wisdom"},
	{ID: "s11", Verse: "A good person leaves an inheritance for their children's children.", Reference: "Proverbs 13:22", Theme: "stewardship"},
	{ID: "s12", Verse: "Give, and it will be given to you. A good measure, pressed down, shaken together.", Reference: "Luke 6:38", Theme: "generosity"},
	{ID: "s13", Verse: "No one can serve two masters. Either you will hate the one and love the other.", Reference: "Matthew 6:24", Theme: "wisdom"},
	{ID: "s14", Verse: "The Lord your God will bless you in all your work and in everything you put your hand to.", Reference: "Deuteronomy 15:10", Theme: "diligence"},
	{ID: "s15", Verse: "She watches over the affairs of her household and does not eat the bread of idleness.", Reference: "Proverbs 31:27", Theme: "discipline"},
	{ID: "s16", Verse: "A feast is made for laughter, wine makes life merry, and money is the answer for everything.", Reference: "Ecclesiastes 10:19", Theme: "wisdom"},
	{ID: "s17", Verse: "But seek first his kingdom and his righteousness, and all these things will be given to you.", Reference: "Matthew 6:33", Theme: "peace"},
	{ID: "s18", Verse: "I have learned, in whatever state I am, to be content.", Reference: "Philippians 4:11", Theme: "discipline"},
	{ID: "s19", Verse: "The rich rule over the poor, and the borrower is slave to the lender.", Reference: "Proverbs 22:7", Theme: "discipline"},
	{ID: "s20", Verse: "By wisdom a house is built, and through understanding it is established.", Reference: "Proverbs 24:3", Theme: "wisdom"},
	{ID: "s21", Verse: "Commit to the Lord whatever you do, and he will establish your plans.", Reference: "Proverbs 16:3", Theme: "diligence"},
	{ID: "s22", Verse: "And my God will meet all your needs according to the riches of his glory.", Reference: "Philippians 4:19", Theme: "peace"},
	{ID: "s23", Verse: "Each of you should give what you have decided in your heart to give, not reluctantly or under compulsion.", Reference: "2 Corinthians 9:7", Theme: "generosity"},
	{ID: "s24", Verse: "Plans fail for lack of counsel, but with many advisers they succeed.", Reference: "Proverbs 15:22", Theme: "wisdom"},
	{ID: "s25", Verse: "In the house of the wise are stores of choice food and oil, but a foolish man devours all he has.", Reference: "Proverbs 21:20", Theme: "stewardship"},
	{ID: "s26", Verse: "Cast all your anxiety on him because he cares for you.", Reference: "1 Peter 5:7", Theme: "peace"},
	{ID: "s27", Verse: "Do not store up for yourselves treasures on earth, where moths and vermin destroy.", Reference: "Matthew 6:19", Theme: "stewardship"},
	{ID: "s28", Verse: "All hard work brings a profit, but mere talk leads only to poverty.", Reference: "Proverbs 14:23", Theme: "diligence"},
	{ID: "s29", Verse: "The Lord makes firm the steps of the one who delights in him.", Reference: "Psalm 37:23", Theme: "discipline"},
	{ID: "s30", Verse: "Trust in the Lord with all your heart and lean not on your own understanding.", Reference: "Proverbs 3:5", Theme: "wisdom"},
}

// ThemesForGoal maps each reset goal to the scripture themes it draws from.
var ThemesForGoal = map[string][]string{
	"budget_discipline":  {"discipline", "stewardship", "wisdom"},
	"debt_reset":         {"discipline", "wisdom", "peace"},
	"savings_growth":     {"stewardship", "diligence", "wisdom"},
	"giving_consistency": {"generosity", "stewardship", "peace"},
}

var fallbackThemes = []string{"wisdom", "stewardship", "diligence"}

// DailyScripture rotates through the goal's themed verses by day index.
// Unknown goals fall back to a general theme set rather than erroring.
func DailyScripture(goal string, dayIndex int) Scripture {
	themes, ok := ThemesForGoal[goal]
	if !ok {
		themes = fallbackThemes
	}
	themed := make([]Scripture, 0, len(Scriptures))
	for _, s := range Scriptures {
		for _, t := range themes {
			if s.Theme == t {
				themed = append(themed, s)
				break
			}
		}
	}
	if dayIndex < 0 {
		dayIndex = 0
	}
	return themed[dayIndex%len(themed)]
}

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var Countries = []Country{
	{Code: "US", Name: "United States"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "NG", Name: "Nigeria"},
	{Code: "GH", Name: "Ghana"},
	{Code: "KE", Name: "Kenya"},
	{Code: "ZA", Name: "South Africa"},
	{Code: "CA", Name: "Canada"},
	{Code: "AU", Name: "Australia"},
	{Code: "IN", Name: "India"},
	{Code: "BR", Name: "Brazil"},
	{Code: "MX", Name: "Mexico"},
	{Code: "SG", Name: "Singapore"},
	{Code: "AE", Name: "United Arab Emirates"},
	{Code: "ZW", Name: "Zimbabwe"},
	{Code: "UG", Name: "Uganda"},
	{Code: "TZ", Name: "Tanzania"},
	{Code: "RW", Name: "Rwanda"},
	{Code: "CM", Name: "Cameroon"},
}

type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var Currencies = []Currency{
	{Code: "USD", Name: "US Dollar"},
	{Code: "GBP", Name: "British Pound"},
	{Code: "EUR", Name: "Euro"},
	{Code: "NGN", Name: "Nigerian Naira"},
	{Code: "GHS", Name: "Ghanaian Cedi"},
	{Code: "KES", Name: "Kenyan Shilling"},
	{Code: "ZAR", Name: "South African Rand"},
	{Code: "CAD", Name: "Canadian Dollar"},
	{Code: "AUD", Name: "Australian Dollar"},
	{Code: "INR", Name: "Indian Rupee"},
	{Code: "BRL", Name: "Brazilian Real"},
	{Code: "MXN", Name: "Mexican Peso"},
	{Code: "JPY", Name: "Japanese Yen"},
	{Code: "SGD", Name: "Singapore Dollar"},
	{Code: "AED", Name: "UAE Dirham"},
}

// CountryCurrencies maps a country code to its default currency.
var CountryCurrencies = map[string]string{
	"US": "USD", "GB": "GBP", "EU": "EUR", "NG": "NGN", "GH": "GHS",
	"KE": "KES", "ZA": "ZAR", "CA": "CAD", "AU": "AUD", "IN": "INR",
	"BR": "BRL", "MX": "MXN", "JP": "JPY", "SG": "SGD", "AE": "AED",
	"ZW": "ZWL", "UG": "UGX", "TZ": "TZS", "RW": "RWF", "CM": "XAF",
}

type ResetGoal struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"desc"`
}

var ResetGoals = []ResetGoal{
	{Value: "budget_discipline", Label: "Budget Discipline", Description: "Build consistent spending habits"},
	{Value: "debt_reset", Label: "Debt Reset", Description: "Create a debt-free plan"},
	{Value: "savings_growth", Label: "Savings Growth", Description: "Grow your emergency fund & savings"},
	{Value: "giving_consistency", Label: "Giving Consistency", Description: "Establish faithful tithing habits"},
}

// ValidResetGoal reports whether v is one of the four program goals.
func ValidResetGoal(v string) bool {
	for _, g := range ResetGoals {
		if g.Value == v {
			return true
		}
	}
	return false
}

type DefaultCategory struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var DefaultCategories = []DefaultCategory{
	{Name: "Housing / Rent", Color: "#2F6B4F", Icon: "home"},
	{Name: "Food & Groceries", Color: "#B08D57", Icon: "shopping-cart"},
	{Name: "Transport", Color: "#6B7280", Icon: "car"},
	{Name: "Utilities", Color: "#1F2937", Icon: "zap"},
	{Name: "Healthcare", Color: "#B42318", Icon: "heart"},
	{Name: "Education", Color: "#4F6B2F", Icon: "book"},
	{Name: "Entertainment", Color: "#8D57B0", Icon: "tv"},
	{Name: "Clothing", Color: "#574BB0", Icon: "shirt"},
	{Name: "Savings", Color: "#2F6B4F", Icon: "piggy-bank"},
	{Name: "Miscellaneous", Color: "#9CA3AF", Icon: "more-horizontal"},
}
