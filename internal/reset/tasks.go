package reset

// Task is one day of the guided program.
type Task struct {
	ID          string   `json:"id"`
	Week        int      `json:"week"`
	Day         int      `json:"day"` // 1-7 within the week
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        TaskType `json:"type"`
	Theme       string   `json:"theme"`
}

type TaskType string

const (
	TaskReflection TaskType = "reflection"
	TaskAction     TaskType = "action"
	TaskPrayer     TaskType = "prayer"
	TaskStudy      TaskType = "study"
)

// Tasks is the immutable program table: 12 weeks of 7 daily tasks, in
// program order. Lookups always go through TaskForDayIndex, never a raw
// index.
var Tasks = []Task{
	{ID: "w1d1", Week: 1, Day: 1, Title: "Set your intention", Description: "Write down why you are starting this reset. What does financial freedom mean for you spiritually?", Type: TaskReflection, Theme: "foundation"},
	{ID: "w1d2", Week: 1, Day: 2, Title: "List all income sources", Description: "Write every source of income you have, even irregular ones. Acknowledge God as your provider.", Type: TaskAction, Theme: "foundation"},
	{ID: "w1d3", Week: 1, Day: 3, Title: "Pray over your finances", Description: "Spend 10 minutes in prayer, surrendering your financial situation to God.", Type: TaskPrayer, Theme: "foundation"},
	{ID: "w1d4", Week: 1, Day: 4, Title: "Track yesterday's spending", Description: "Recall and record every expense from the last 2 days. No judgment, just observation.", Type: TaskAction, Theme: "foundation"},
	{ID: "w1d5", Week: 1, Day: 5, Title: "Study Proverbs 21:5", Description: "Read and meditate on Proverbs 21:5. Write 3 ways planning relates to your current life.", Type: TaskStudy, Theme: "foundation"},
	{ID: "w1d6", Week: 1, Day: 6, Title: "Create your budget draft", Description: "Set up your monthly budget categories with planned amounts in the app.", Type: TaskAction, Theme: "foundation"},
	{ID: "w1d7", Week: 1, Day: 7, Title: "Week 1 Reflection", Description: "What surprised you this week? What is God showing you about your relationship with money?", Type: TaskReflection, Theme: "foundation"},
	{ID: "w2d1", Week: 2, Day: 1, Title: "Audit your subscriptions", Description: "List all recurring subscriptions. Which align with your values? Which can you pause?", Type: TaskAction, Theme: "stewardship"},
	{ID: "w2d2", Week: 2, Day: 2, Title: "The 10% principle", Description: "Calculate 10% of your monthly income. Pray and decide your tithe commitment.", Type: TaskPrayer, Theme: "stewardship"},
	{ID: "w2d3", Week: 2, Day: 3, Title: "Meal plan this week", Description: "Plan meals to reduce food waste and impulse grocery spending.", Type: TaskAction, Theme: "stewardship"},
	{ID: "w2d4", Week: 2, Day: 4, Title: "Study Luke 16:10-12", Description: "Reflect on faithfulness with small things. Where is God asking you to be more faithful?", Type: TaskStudy, Theme: "stewardship"},
	{ID: "w2d5", Week: 2, Day: 5, Title: "Log your giving to date", Description: "Record any giving you have already done this month in the Giving tracker.", Type: TaskAction, Theme: "stewardship"},
	{ID: "w2d6", Week: 2, Day: 6, Title: "Gratitude inventory", Description: "List 10 financial blessings — things you have that you did not earn alone.", Type: TaskReflection, Theme: "stewardship"},
	{ID: "w2d7", Week: 2, Day: 7, Title: "Week 2 Reflection", Description: "How did stewardship show up for you this week? What small win can you celebrate?", Type: TaskReflection, Theme: "stewardship"},
	{ID: "w3d1", Week: 3, Day: 1, Title: "List all debts", Description: "Write every debt: amount owed, interest rate, minimum payment. Bring it into the light.", Type: TaskAction, Theme: "debt"},
	{ID: "w3d2", Week: 3, Day: 2, Title: "Pray over your debts", Description: "Pray specifically over each debt. Ask for wisdom, discipline, and provision.", Type: TaskPrayer, Theme: "debt"},
	{ID: "w3d3", Week: 3, Day: 3, Title: "Research the debt snowball", Description: "Learn the debt snowball method. How could you apply it to your situation?", Type: TaskStudy, Theme: "debt"},
	{ID: "w3d4", Week: 3, Day: 4, Title: "Find one expense to cut", Description: "Identify one non-essential expense this week. Redirect that money toward savings or debt.", Type: TaskAction, Theme: "debt"},
	{ID: "w3d5", Week: 3, Day: 5, Title: "Study Proverbs 22:7", Description: "Meditate on 'the borrower is slave to the lender.' How does debt affect your freedom?", Type: TaskStudy, Theme: "debt"},
	{ID: "w3d6", Week: 3, Day: 6, Title: "Call one creditor", Description: "If applicable, contact one creditor to understand your options or confirm your balance.", Type: TaskAction, Theme: "debt"},
	{ID: "w3d7", Week: 3, Day: 7, Title: "Week 3 Reflection", Description: "How do you feel about your debts today vs. Day 1? What shifted in your mindset?", Type: TaskReflection, Theme: "debt"},
	{ID: "w4d1", Week: 4, Day: 1, Title: "Define your giving philosophy", Description: "Write a personal statement: 'I give because...' Let Scripture guide it.", Type: TaskReflection, Theme: "generosity"},
	{ID: "w4d2", Week: 4, Day: 2, Title: "Give something today", Description: "Give a gift — money, time, or resources — to someone in need today.", Type: TaskAction, Theme: "generosity"},
	{ID: "w4d3", Week: 4, Day: 3, Title: "Study 2 Corinthians 9:6-8", Description: "Read the passage on cheerful giving. What does cheerful generosity look like practically?", Type: TaskStudy, Theme: "generosity"},
	{ID: "w4d4", Week: 4, Day: 4, Title: "Review your tithe target", Description: "Look at your giving tracker. Are you on track with your monthly giving goal?", Type: TaskAction, Theme: "generosity"},
	{ID: "w4d5", Week: 4, Day: 5, Title: "Pray for your church/community", Description: "Spend 10 minutes praying for the ministries and communities your giving supports.", Type: TaskPrayer, Theme: "generosity"},
	{ID: "w4d6", Week: 4, Day: 6, Title: "Stretch giving idea", Description: "Brainstorm one way to give beyond your tithe this month without straining your budget.", Type: TaskReflection, Theme: "generosity"},
	{ID: "w4d7", Week: 4, Day: 7, Title: "Week 4 Reflection", Description: "How has giving shifted your perspective this week? Did generosity feel like joy or burden?", Type: TaskReflection, Theme: "generosity"},
	{ID: "w5d1", Week: 5, Day: 1, Title: "24-hour no-spend challenge", Description: "Do not spend any money today except absolute necessities. Notice your triggers.", Type: TaskAction, Theme: "discipline"},
	{ID: "w5d2", Week: 5, Day: 2, Title: "Review last month's transactions", Description: "Categorize and review all transactions from last month. Any surprises?", Type: TaskAction, Theme: "discipline"},
	{ID: "w5d3", Week: 5, Day: 3, Title: "Study Philippians 4:11-13", Description: "Paul learned contentment. What would learning contentment look like for you financially?", Type: TaskStudy, Theme: "discipline"},
	{ID: "w5d4", Week: 5, Day: 4, Title: "Set a savings goal", Description: "Define one specific savings goal with a target amount and date. Add it to your prayer goals.", Type: TaskAction, Theme: "discipline"},
	{ID: "w5d5", Week: 5, Day: 5, Title: "Identify your spending triggers", Description: "When do you overspend? Stress, boredom, comparison? Journal about your triggers.", Type: TaskReflection, Theme: "discipline"},
	{ID: "w5d6", Week: 5, Day: 6, Title: "Create a weekly check-in habit", Description: "Schedule a 15-minute 'money meeting' with yourself (or spouse) every week.", Type: TaskAction, Theme: "discipline"},
	{ID: "w5d7", Week: 5, Day: 7, Title: "Week 5 Reflection", Description: "Where did discipline feel easy? Where was it hard? What do you need from God here?", Type: TaskReflection, Theme: "discipline"},
	{ID: "w6d1", Week: 6, Day: 1, Title: "Emergency fund check", Description: "Do you have 1 month of expenses saved? If not, what is your plan to get there?", Type: TaskAction, Theme: "provision"},
	{ID: "w6d2", Week: 6, Day: 2, Title: "Pray for wisdom in decisions", Description: "Bring every upcoming financial decision to God in prayer before acting.", Type: TaskPrayer, Theme: "provision"},
	{ID: "w6d3", Week: 6, Day: 3, Title: "Study Matthew 6:25-34", Description: "Read Jesus on worry and provision. What are you anxious about financially?", Type: TaskStudy, Theme: "provision"},
	{ID: "w6d4", Week: 6, Day: 4, Title: "Review budget mid-month", Description: "Check your budget categories. Are you on track? Adjust if needed.", Type: TaskAction, Theme: "provision"},
	{ID: "w6d5", Week: 6, Day: 5, Title: "Thank God for provision", Description: "Journal 5 specific ways God has provided for you financially in the last 6 months.", Type: TaskReflection, Theme: "provision"},
	{ID: "w6d6", Week: 6, Day: 6, Title: "Accountability check-in", Description: "Share your reset journey with someone you trust. Ask them to check in with you.", Type: TaskAction, Theme: "provision"},
	{ID: "w6d7", Week: 6, Day: 7, Title: "Midpoint Celebration!", Description: "You are 42 days in. Celebrate your progress. God is working in your finances.", Type: TaskReflection, Theme: "provision"},
	{ID: "w7d1", Week: 7, Day: 1, Title: "Insurance & protection review", Description: "Do you have adequate health, life, and property insurance? Pray for wisdom.", Type: TaskAction, Theme: "protection"},
	{ID: "w7d2", Week: 7, Day: 2, Title: "Pray for financial restoration", Description: "Pray specifically about any areas of financial loss, regret, or setback.", Type: TaskPrayer, Theme: "protection"},
	{ID: "w7d3", Week: 7, Day: 3, Title: "Study Proverbs 13:11", Description: "Wealth gained hastily dwindles. Journal about patience in your financial journey.", Type: TaskStudy, Theme: "protection"},
	{ID: "w7d4", Week: 7, Day: 4, Title: "Review your debt progress", Description: "Look at your debt list from Week 3. Any progress? Celebrate even small movement.", Type: TaskAction, Theme: "protection"},
	{ID: "w7d5", Week: 7, Day: 5, Title: "Forgive financial mistakes", Description: "Are you holding shame about past financial decisions? Write a prayer of release.", Type: TaskPrayer, Theme: "protection"},
	{ID: "w7d6", Week: 7, Day: 6, Title: "Plan a no-spend weekend", Description: "Plan a full weekend with zero optional spending. Discover free joys.", Type: TaskAction, Theme: "protection"},
	{ID: "w7d7", Week: 7, Day: 7, Title: "Week 7 Reflection", Description: "What does financial protection mean to you spiritually? How has God been your shield?", Type: TaskReflection, Theme: "protection"},
	{ID: "w8d1", Week: 8, Day: 1, Title: "Income growth brainstorm", Description: "List 3 ways you could legitimately increase income this month. Pray over each one.", Type: TaskAction, Theme: "growth"},
	{ID: "w8d2", Week: 8, Day: 2, Title: "Study the Parable of Talents", Description: "Read Matthew 25:14-30. What talent (resource/skill) are you burying instead of investing?", Type: TaskStudy, Theme: "growth"},
	{ID: "w8d3", Week: 8, Day: 3, Title: "Skills & gifts inventory", Description: "List your top 5 skills or gifts. Which of these could serve others and generate income?", Type: TaskReflection, Theme: "growth"},
	{ID: "w8d4", Week: 8, Day: 4, Title: "Savings milestone check", Description: "How close are you to your savings goal? What one action can you take today?", Type: TaskAction, Theme: "growth"},
	{ID: "w8d5", Week: 8, Day: 5, Title: "Pray for open doors", Description: "Pray boldly for God to open income or opportunity doors you cannot create yourself.", Type: TaskPrayer, Theme: "growth"},
	{ID: "w8d6", Week: 8, Day: 6, Title: "Invest in learning", Description: "Identify one free or low-cost resource (book, podcast, course) to improve your financial literacy.", Type: TaskAction, Theme: "growth"},
	{ID: "w8d7", Week: 8, Day: 7, Title: "Week 8 Reflection", Description: "Where is God calling you to grow financially? Are you willing to be stretched?", Type: TaskReflection, Theme: "growth"},
	{ID: "w9d1", Week: 9, Day: 1, Title: "Family & legacy conversation", Description: "If you have a family, discuss money values with them. What legacy do you want to leave?", Type: TaskReflection, Theme: "legacy"},
	{ID: "w9d2", Week: 9, Day: 2, Title: "Study Proverbs 13:22", Description: "A good person leaves an inheritance. What does legacy giving mean for your situation?", Type: TaskStudy, Theme: "legacy"},
	{ID: "w9d3", Week: 9, Day: 3, Title: "Draft a simple will / estate note", Description: "Even a simple written record of your wishes is better than none. Start today.", Type: TaskAction, Theme: "legacy"},
	{ID: "w9d4", Week: 9, Day: 4, Title: "Pray for future generations", Description: "Pray for your children, grandchildren, or those who will come after you.", Type: TaskPrayer, Theme: "legacy"},
	{ID: "w9d5", Week: 9, Day: 5, Title: "Giving beyond your lifetime", Description: "Research one charity or ministry you could include in your long-term giving plan.", Type: TaskAction, Theme: "legacy"},
	{ID: "w9d6", Week: 9, Day: 6, Title: "Values & money alignment check", Description: "Do your spending patterns reflect your stated values? Where is there a gap?", Type: TaskReflection, Theme: "legacy"},
	{ID: "w9d7", Week: 9, Day: 7, Title: "Week 9 Reflection", Description: "What does it mean for you to leave a godly financial legacy? What needs to change?", Type: TaskReflection, Theme: "legacy"},
	{ID: "w10d1", Week: 10, Day: 1, Title: "Celebrate giving wins", Description: "Review your giving tracker for the past 3 months. Celebrate every entry as faithfulness.", Type: TaskReflection, Theme: "celebration"},
	{ID: "w10d2", Week: 10, Day: 2, Title: "Budget mastery check", Description: "How many months have you stayed within budget? Reward yourself for progress.", Type: TaskAction, Theme: "celebration"},
	{ID: "w10d3", Week: 10, Day: 3, Title: "Share your story", Description: "Write out your faith & finance testimony so far. Who could benefit from hearing it?", Type: TaskReflection, Theme: "celebration"},
	{ID: "w10d4", Week: 10, Day: 4, Title: "Pray for others on their journey", Description: "Pray for 3 people you know who are struggling financially. Ask God how you can help.", Type: TaskPrayer, Theme: "celebration"},
	{ID: "w10d5", Week: 10, Day: 5, Title: "Study Deuteronomy 8:17-18", Description: "Do not forget that it is God who gives you power to produce wealth. Reflect on this.", Type: TaskStudy, Theme: "celebration"},
	{ID: "w10d6", Week: 10, Day: 6, Title: "Plan a generous act", Description: "Plan one meaningful act of generosity for someone outside your immediate circle.", Type: TaskAction, Theme: "celebration"},
	{ID: "w10d7", Week: 10, Day: 7, Title: "Week 10 Reflection", Description: "How has your relationship with money changed since Day 1? What is different in your heart?", Type: TaskReflection, Theme: "celebration"},
	{ID: "w11d1", Week: 11, Day: 1, Title: "Next 90-day preview", Description: "What financial goal do you want to tackle in the next 90 days? Set it today.", Type: TaskAction, Theme: "future"},
	{ID: "w11d2", Week: 11, Day: 2, Title: "Accountability structures", Description: "What systems will keep you accountable after this reset ends? Write them down.", Type: TaskReflection, Theme: "future"},
	{ID: "w11d3", Week: 11, Day: 3, Title: "Study Joshua 1:8", Description: "Meditate on this book of the law. How does daily renewal apply to your finances?", Type: TaskStudy, Theme: "future"},
	{ID: "w11d4", Week: 11, Day: 4, Title: "Annual budget preview", Description: "Look ahead at the next 6 months. Are there large expenses to plan for now?", Type: TaskAction, Theme: "future"},
	{ID: "w11d5", Week: 11, Day: 5, Title: "Mentor or discipleship", Description: "Identify someone more financially mature than you. How can you learn from them?", Type: TaskReflection, Theme: "future"},
	{ID: "w11d6", Week: 11, Day: 6, Title: "Pray for sustained discipline", Description: "Ask God for the grace to maintain good habits after the reset ends.", Type: TaskPrayer, Theme: "future"},
	{ID: "w11d7", Week: 11, Day: 7, Title: "Week 11 Reflection", Description: "What is your vision for your finances 1 year from now? How does faith shape that vision?", Type: TaskReflection, Theme: "future"},
	{ID: "w12d1", Week: 12, Day: 1, Title: "Final review: budget", Description: "Pull your monthly report. How did your actual spending compare to your plan over 90 days?", Type: TaskAction, Theme: "completion"},
	{ID: "w12d2", Week: 12, Day: 2, Title: "Final review: giving", Description: "Review your complete giving record. What did faithfulness in giving produce in you?", Type: TaskReflection, Theme: "completion"},
	{ID: "w12d3", Week: 12, Day: 3, Title: "Final review: prayer goals", Description: "Look at your prayer goals. Which were answered? Which are still in progress?", Type: TaskReflection, Theme: "completion"},
	{ID: "w12d4", Week: 12, Day: 4, Title: "Write your testimony", Description: "Write a full 90-day testimony: where you started, what changed, and what God did.", Type: TaskReflection, Theme: "completion"},
	{ID: "w12d5", Week: 12, Day: 5, Title: "Share your testimony", Description: "Share your 90-day story with someone — a friend, your church, or on social media.", Type: TaskAction, Theme: "completion"},
	{ID: "w12d6", Week: 12, Day: 6, Title: "Thanksgiving and worship", Description: "Spend 20 minutes in worship and thanksgiving. Your faithfulness matters to God.", Type: TaskPrayer, Theme: "completion"},
	{ID: "w12d7", Week: 12, Day: 7, Title: "Day 90 – You made it!", Description: "Congratulations! You completed the Faith & Finance Reset. Now start your next 90 days.", Type: TaskReflection, Theme: "completion"},
}
