package curriculum

// Catalog returns the full module roadmap. Content is ordered from
// money basics through investing and tax; the unlock rule walks this
// order one module at a time.
func Catalog() []Module {
	return []Module{
		{
			Title:       "Money Basics",
			Description: "Understand income, expenses and where your money actually goes.",
			Icon:        "wallet",
			Lessons: []Lesson{
				{
					Title: "Your Monthly Cash Flow",
					Sections: []Section{
						{Heading: "Income vs Expenses", Body: "Everything you earn in a month is income; everything you spend is an expense. The difference is your cash flow. Positive cash flow builds wealth, negative cash flow builds debt."},
						{Heading: "Tracking Where Money Goes", Body: "Most people underestimate small recurring expenses. Write down every expense for one month and group them: housing, food, transport, subscriptions, everything else."},
						{Heading: "Your Savings Rate", Body: "Savings rate is the share of income you keep. Even 10% saved consistently beats 30% saved occasionally. Aim to raise it one percent at a time."},
					},
					Calculator: Calculator{
						FormulaID: "cashflow",
						Inputs: []CalculatorInput{
							{Name: "income", Label: "Monthly Income", Min: 0, Max: 500000, Step: 1000, Default: 50000},
							{Name: "expenses", Label: "Monthly Expenses", Min: 0, Max: 500000, Step: 1000, Default: 35000},
						},
					},
					Quiz: []QuizQuestion{
						{Prompt: "What is cash flow?", Options: []string{"Your total salary", "Income minus expenses", "Money in your bank account", "Your credit limit"}, CorrectAnswer: 1, Explanation: "Cash flow is what remains after subtracting expenses from income."},
						{Prompt: "A negative cash flow means", Options: []string{"You are saving money", "You spend more than you earn", "Your salary was delayed", "You have no bank account"}, CorrectAnswer: 1, Explanation: "Spending more than you earn forces you to borrow or dip into savings."},
						{Prompt: "If you earn 40,000 and spend 32,000, your savings rate is", Options: []string{"8%", "12%", "20%", "32%"}, CorrectAnswer: 2, Explanation: "8,000 saved out of 40,000 earned is 20%."},
						{Prompt: "Which expense category do people most often underestimate?", Options: []string{"Rent", "Small recurring expenses", "Annual insurance", "Taxes"}, CorrectAnswer: 1, Explanation: "Subscriptions and daily small purchases add up unnoticed."},
						{Prompt: "The first step to improving cash flow is", Options: []string{"Earning a bonus", "Tracking every expense for a month", "Opening a new account", "Cancelling your phone plan"}, CorrectAnswer: 1, Explanation: "You cannot fix what you have not measured."},
					},
					Simulation: SimBudget,
					CheatSheet: CheatSheet{
						Title: "Your Monthly Cash Flow",
						Points: []string{
							"Cash flow = income - expenses; keep it positive every month.",
							"Track every expense for one full month before changing anything.",
							"Raise your savings rate one percent at a time.",
						},
						DailyTip: "Check your account balance at the same time every day for a week.",
					},
				},
			},
		},
		{
			Title:       "Budgeting",
			Description: "Split your income with the 50/30/20 rule and stick to it.",
			Icon:        "pie-chart",
			Lessons: []Lesson{
				{
					Title: "The 50/30/20 Rule",
					Sections: []Section{
						{Heading: "Three Buckets", Body: "Split after-tax income into needs (50%), wants (30%) and savings (20%). Needs are things you cannot skip: rent, groceries, utilities, minimum debt payments."},
						{Heading: "Wants Are Not Evil", Body: "The 30% wants bucket is deliberate. A budget that forbids all fun fails within weeks. Spend the wants bucket guilt-free and stop when it is empty."},
						{Heading: "Pay Yourself First", Body: "Move the 20% savings out on payday, before you can spend it. What stays in the spending account feels spendable."},
					},
					Calculator: Calculator{
						FormulaID: "fifty-thirty-twenty",
						Inputs: []CalculatorInput{
							{Name: "income", Label: "Monthly Income", Min: 0, Max: 500000, Step: 1000, Default: 60000},
						},
					},
					Quiz: []QuizQuestion{
						{Prompt: "In the 50/30/20 rule, the 20% goes to", Options: []string{"Rent", "Entertainment", "Savings and debt repayment", "Groceries"}, CorrectAnswer: 2, Explanation: "The 20% bucket builds savings and clears debt beyond minimums."},
						{Prompt: "Which of these is a need?", Options: []string{"Streaming subscription", "Rent", "Weekend trip", "New phone upgrade"}, CorrectAnswer: 1, Explanation: "Needs are expenses you cannot defer without real harm."},
						{Prompt: "Why keep a wants bucket at all?", Options: []string{"It grows wealth fastest", "Budgets without any fun get abandoned", "Banks require it", "It reduces taxes"}, CorrectAnswer: 1, Explanation: "Sustainable budgets allow controlled spending on enjoyment."},
						{Prompt: "Pay yourself first means", Options: []string{"Take a salary advance", "Move savings out on payday", "Pay bills late", "Buy what you want first"}, CorrectAnswer: 1, Explanation: "Savings moved out immediately never feel spendable."},
						{Prompt: "On a 60,000 income, the needs bucket is", Options: []string{"12,000", "18,000", "30,000", "48,000"}, CorrectAnswer: 2, Explanation: "50% of 60,000 is 30,000."},
					},
					Simulation: SimBudget,
					CheatSheet: CheatSheet{
						Title: "The 50/30/20 Rule",
						Points: []string{
							"50% needs, 30% wants, 20% savings, from after-tax income.",
							"Move the savings share out on payday, not at month end.",
							"Spend the wants bucket guilt-free, then stop.",
						},
						DailyTip: "Before any non-essential purchase, ask which bucket it comes from.",
					},
				},
			},
		},
		{
			Title:       "Saving Smart",
			Description: "Savings accounts, fixed deposits and the power of compounding.",
			Icon:        "piggy-bank",
			Lessons: []Lesson{
				{
					Title: "Savings Account vs Fixed Deposit",
					Sections: []Section{
						{Heading: "Why Idle Money Shrinks", Body: "Inflation quietly reduces what your money buys. Cash sitting in a low-interest account loses purchasing power every year."},
						{Heading: "Compounding Works For You", Body: "A fixed deposit compounds interest on interest. The longer the money stays, the faster the curve bends upward. Frequency matters too: quarterly compounding beats annual at the same rate."},
						{Heading: "Match the Tool to the Goal", Body: "Keep one or two months of expenses liquid in savings; park money you will not need for a year or more in deposits."},
					},
					Calculator: Calculator{
						FormulaID: "savings-vs-fd",
						Inputs: []CalculatorInput{
							{Name: "amount", Label: "Amount", Min: 1000, Max: 10000000, Step: 1000, Default: 100000},
							{Name: "years", Label: "Years", Min: 1, Max: 30, Step: 1, Default: 5},
						},
					},
					Quiz: []QuizQuestion{
						{Prompt: "Compound interest means", Options: []string{"Interest paid in cash monthly", "Interest earned on interest", "A fixed fee per year", "Interest only on withdrawals"}, CorrectAnswer: 1, Explanation: "Earlier interest joins the principal and itself earns interest."},
						{Prompt: "At the same rate, which compounds to more?", Options: []string{"Annual compounding", "Quarterly compounding", "They are identical", "Simple interest"}, CorrectAnswer: 1, Explanation: "More frequent compounding yields slightly more."},
						{Prompt: "Inflation affects idle cash by", Options: []string{"Growing it slowly", "Reducing what it can buy", "Doubling it", "Nothing"}, CorrectAnswer: 1, Explanation: "Prices rise while the cash amount stays the same."},
						{Prompt: "Money needed next month belongs in", Options: []string{"A five-year deposit", "A liquid savings account", "Stocks", "Gold"}, CorrectAnswer: 1, Explanation: "Short-horizon money must stay liquid and safe."},
						{Prompt: "Simple interest on 10,000 at 5% for 2 years is", Options: []string{"500", "1,000", "1,025", "2,000"}, CorrectAnswer: 1, Explanation: "10,000 x 5% x 2 years = 1,000."},
					},
					Simulation: SimCompound,
					CheatSheet: CheatSheet{
						Title: "Savings Account vs Fixed Deposit",
						Points: []string{
							"Compounding earns interest on interest; time is the main ingredient.",
							"Quarterly compounding beats annual at the same headline rate.",
							"Keep short-term money liquid; lock long-term money for better rates.",
						},
						DailyTip: "Check the compounding frequency, not just the rate, before opening a deposit.",
					},
				},
			},
		},
		{
			Title:       "Credit & Loans",
			Description: "Use credit cards without feeding them, and understand EMIs before signing.",
			Icon:        "credit-card",
			Lessons: []Lesson{
				{
					Title: "Escaping the Minimum Payment Trap",
					Sections: []Section{
						{Heading: "How Card Interest Works", Body: "Credit cards charge around 3% per month on unpaid balances, roughly 36% a year. Paying only the minimum keeps the balance alive for years."},
						{Heading: "The Payment Must Beat the Interest", Body: "If your monthly payment is less than the interest charged, the balance grows even while you pay. Any serious payoff plan starts above that line."},
						{Heading: "Attack the Balance", Body: "Fix a payment well above the minimum and stop new spending on the card. Each month the interest portion shrinks and the principal portion grows."},
					},
					Calculator: Calculator{
						FormulaID: "credit-card-payoff",
						Inputs: []CalculatorInput{
							{Name: "balance", Label: "Card Balance", Min: 1000, Max: 1000000, Step: 1000, Default: 50000},
							{Name: "rate", Label: "Annual Rate %", Min: 12, Max: 48, Step: 1, Default: 36},
							{Name: "payment", Label: "Monthly Payment", Min: 500, Max: 100000, Step: 500, Default: 5000},
						},
					},
					Quiz: []QuizQuestion{
						{Prompt: "Typical credit card interest is about", Options: []string{"6% a year", "12% a year", "36% a year", "80% a year"}, CorrectAnswer: 2, Explanation: "Around 3% per month compounds to roughly 36-42% a year."},
						{Prompt: "Paying only the minimum due", Options: []string{"Clears debt quickly", "Keeps the balance alive for years", "Avoids all interest", "Improves rewards"}, CorrectAnswer: 1, Explanation: "Minimums mostly cover interest, barely touching principal."},
						{Prompt: "If the payment is below the monthly interest, the balance", Options: []string{"Shrinks slowly", "Stays constant", "Grows", "Is written off"}, CorrectAnswer: 2, Explanation: "Unpaid interest is added to the balance."},
						{Prompt: "The grace period on a card applies when", Options: []string{"You carry a balance", "You pay in full by the due date", "You take a cash advance", "Never"}, CorrectAnswer: 1, Explanation: "Paying the full statement by the due date avoids interest entirely."},
						{Prompt: "The first move in a payoff plan is", Options: []string{"A new card", "Stop new spending on the card", "Ignore statements", "Pay yearly"}, CorrectAnswer: 1, Explanation: "New charges undo every payment you make."},
					},
					Simulation: SimCredit,
					CheatSheet: CheatSheet{
						Title: "Escaping the Minimum Payment Trap",
						Points: []string{
							"Card interest runs near 3% per month on unpaid balances.",
							"Pay the full statement by the due date to owe zero interest.",
							"A payoff payment must exceed the monthly interest, or the debt grows.",
						},
						DailyTip: "Read one credit card statement line by line today.",
					},
				},
				{
					Title: "Loans and EMIs",
					Sections: []Section{
						{Heading: "What an EMI Is", Body: "An equated monthly installment repays a loan in fixed amounts. Early installments are mostly interest; later ones mostly principal."},
						{Heading: "Tenure Is a Lever", Body: "A longer tenure lowers the monthly EMI but raises the total interest paid, often dramatically. Compare the total payment, not just the monthly number."},
						{Heading: "Good Debt, Bad Debt", Body: "Debt that buys an appreciating asset or education can be worth its cost. Debt that funds consumption at high rates rarely is."},
					},
					Calculator: Calculator{
						FormulaID: "emi",
						Inputs: []CalculatorInput{
							{Name: "principal", Label: "Loan Amount", Min: 10000, Max: 10000000, Step: 10000, Default: 500000},
							{Name: "rate", Label: "Annual Rate %", Min: 0, Max: 24, Step: 0.5, Default: 10},
							{Name: "years", Label: "Tenure (Years)", Min: 1, Max: 30, Step: 1, Default: 5},
						},
					},
					Quiz: []QuizQuestion{
						{Prompt: "EMI stands for", Options: []string{"Equated Monthly Installment", "Extra Monthly Interest", "Estimated Money Index", "Equal Margin Investment"}, CorrectAnswer: 0, Explanation: "A fixed monthly amount that repays principal plus interest."},
						{Prompt: "Early EMIs are mostly", Options: []string{"Principal", "Interest", "Fees", "Insurance"}, CorrectAnswer: 1, Explanation: "Interest accrues on the large early balance."},
						{Prompt: "Doubling the tenure of a loan", Options: []string{"Halves total interest", "Leaves interest unchanged", "Raises total interest", "Cancels interest"}, CorrectAnswer: 2, Explanation: "Interest accrues for longer on a slower-shrinking balance."},
						{Prompt: "Which is most likely good debt?", Options: []string{"A vacation on a card", "An education loan", "A gadget EMI at 24%", "A payday loan"}, CorrectAnswer: 1, Explanation: "Education tends to raise earning power beyond its cost."},
						{Prompt: "Before signing a loan, compare", Options: []string{"Only the monthly EMI", "Only the rate", "Total payment across offers", "The bank's logo"}, CorrectAnswer: 2, Explanation: "Total payment exposes what tenure and rate together cost."},
					},
					Simulation: SimLoan,
					CheatSheet: CheatSheet{
						Title: "Loans and EMIs",
						Points: []string{
							"EMIs front-load interest; the principal shrinks slowly at first.",
							"Longer tenure means smaller EMIs but more total interest.",
							"Judge debt by what it buys, not by how affordable the EMI looks.",
						},
						DailyTip: "Compute the total payment of any EMI offer before agreeing to it.",
					},
				},
			},
		},
		{
			Title:       "Emergency Fund",
			Description: "Build the cushion that keeps one bad month from becoming a bad year.",
			Icon:        "shield",
			Lessons: []Lesson{
				{
					Title: "Your Financial Cushion",
					Sections: []Section{
						{Heading: "Why You Need One", Body: "Job loss, medical bills and urgent repairs do not wait for payday. An emergency fund turns a crisis into an inconvenience."},
						{Heading: "How Big", Body: "Target three to six months of essential expenses. Start with one month; even a small fund prevents the most expensive mistake, borrowing at card rates."},
						{Heading: "Where to Keep It", Body: "The fund must be boring: a liquid savings account or sweep deposit. It is insurance, not an investment."},
					},
					Calculator: Calculator{
						FormulaID: "emergency-fund",
						Inputs: []CalculatorInput{
							{Name: "expenses", Label: "Monthly Essential Expenses", Min: 1000, Max: 500000, Step: 1000, Default: 30000},
							{Name: "months", Label: "Months of Cover", Min: 1, Max: 12, Step: 1, Default: 6},
						},
					},
					Quiz: []QuizQuestion{
						{Prompt: "An emergency fund should cover", Options: []string{"One week of expenses", "3-6 months of essentials", "A year of full income", "Nothing specific"}, CorrectAnswer: 1, Explanation: "Three to six months of essential expenses is the standard target."},
						{Prompt: "The emergency fund belongs in", Options: []string{"Stocks", "A liquid savings account", "A 5-year locked deposit", "Crypto"}, CorrectAnswer: 1, Explanation: "It must be instantly available and never at market risk."},
						{Prompt: "The fund's main job is to", Options: []string{"Earn high returns", "Avoid emergency borrowing at high rates", "Pay for vacations", "Reduce taxes"}, CorrectAnswer: 1, Explanation: "It replaces credit card debt as the crisis fallback."},
						{Prompt: "After spending from the fund, you should", Options: []string{"Close it", "Refill it before other goals", "Invest the rest", "Ignore it"}, CorrectAnswer: 1, Explanation: "Rebuilding the cushion comes before resuming investments."},
						{Prompt: "Which counts as an essential expense?", Options: []string{"Dining out", "Rent", "Streaming services", "Gadgets"}, CorrectAnswer: 1, Explanation: "Essentials are what you must pay even in a bad month."},
					},
					Simulation: SimSavings,
					CheatSheet: CheatSheet{
						Title: "Your Financial Cushion",
						Points: []string{
							"Target 3-6 months of essential expenses, starting with one.",
							"Keep it liquid and boring; it is insurance, not an investment.",
							"Refill the fund before resuming other goals after using it.",
						},
						DailyTip: "List your truly essential monthly expenses and total them.",
					},
				},
			},
		},
		{
			Title:       "Investing Basics",
			Description: "Start a SIP and let time do the heavy lifting.",
			Icon:        "trending-up",
			Lessons: []Lesson{
				{
					Title: "The SIP Habit",
					Sections: []Section{
						{Heading: "Systematic Investment Plans", Body: "A SIP invests a fixed amount every month into a fund. It removes timing decisions and builds the habit that matters more than any single pick."},
						{Heading: "Rupee Cost Averaging", Body: "Fixed monthly amounts buy more units when prices fall and fewer when they rise. Volatility becomes a feature, not a threat."},
						{Heading: "Time Beats Timing", Body: "Ten years of an ordinary SIP usually beats five years of a brilliant one. Start small, start now, increase yearly."},
					},
					Calculator: Calculator{
						FormulaID: "sip-growth",
						Inputs: []CalculatorInput{
							{Name: "monthly", Label: "Monthly SIP", Min: 500, Max: 100000, Step: 500, Default: 5000},
							{Name: "rate", Label: "Expected Return %", Min: 0, Max: 20, Step: 0.5, Default: 12},
							{Name: "years", Label: "Years", Min: 1, Max: 40, Step: 1, Default: 10},
						},
					},
					Quiz: []QuizQuestion{
						{Prompt: "A SIP is", Options: []string{"A one-time lump sum", "A fixed monthly investment", "A type of loan", "A savings account"}, CorrectAnswer: 1, Explanation: "Systematic Investment Plans invest a fixed amount each month."},
						{Prompt: "Rupee cost averaging means", Options: []string{"Buying only when cheap", "Fixed amounts buy more units when prices fall", "Averaging two funds", "Paying average fees"}, CorrectAnswer: 1, Explanation: "The fixed amount automatically buys more in downturns."},
						{Prompt: "The biggest driver of SIP wealth is", Options: []string{"Perfect timing", "Years invested", "Fund name", "Daily monitoring"}, CorrectAnswer: 1, Explanation: "Compounding needs time more than anything else."},
						{Prompt: "When markets fall, a SIP investor should", Options: []string{"Stop the SIP", "Continue as planned", "Withdraw everything", "Switch to cash"}, CorrectAnswer: 1, Explanation: "Falling prices are when the fixed amount buys the most units."},
						{Prompt: "Investing 5,000 monthly for 10 years totals", Options: []string{"5,00,000", "6,00,000", "7,20,000", "12,00,000"}, CorrectAnswer: 1, Explanation: "5,000 x 120 months is 6,00,000 invested."},
					},
					Simulation: SimInvestment,
					CheatSheet: CheatSheet{
						Title: "The SIP Habit",
						Points: []string{
							"Fixed monthly investing removes timing decisions entirely.",
							"Downturns are when your SIP buys the most units.",
							"Years invested matter more than the amount you start with.",
						},
						DailyTip: "Set your SIP date within three days of payday.",
					},
				},
			},
		},
		{
			Title:       "Stock Market",
			Description: "How exchanges, orders and prices actually work.",
			Icon:        "bar-chart",
			Lessons: []Lesson{
				{
					Title: "Market and Limit Orders",
					Sections: []Section{
						{Heading: "What a Share Is", Body: "A share is part ownership of a company. Its price moves with what buyers and sellers agree on, second by second."},
						{Heading: "Market Orders", Body: "A market order executes immediately at the best available price. You get certainty of execution but not of price."},
						{Heading: "Limit Orders", Body: "A limit order names your price and waits. You get certainty of price but the order may never fill. Use limits for illiquid stocks and volatile days."},
					},
					Calculator: Calculator{
						FormulaID: "order-types",
						Inputs: []CalculatorInput{
							{Name: "qty", Label: "Quantity", Min: 1, Max: 10000, Step: 1, Default: 100},
							{Name: "market", Label: "Market Price", Min: 1, Max: 100000, Step: 1, Default: 250},
							{Name: "limit", Label: "Limit Price", Min: 1, Max: 100000, Step: 1, Default: 245},
						},
					},
					Quiz: []QuizQuestion{
						{Prompt: "A market order guarantees", Options: []string{"A price", "Execution", "A profit", "No brokerage"}, CorrectAnswer: 1, Explanation: "It executes immediately, at whatever the best price is."},
						{Prompt: "A limit order guarantees", Options: []string{"Execution", "Your price or better, if it fills", "A profit", "Instant fill"}, CorrectAnswer: 1, Explanation: "It only trades at your named price or better, possibly never."},
						{Prompt: "Owning a share means", Options: []string{"Lending to a company", "Part ownership of a company", "A fixed interest claim", "Insurance"}, CorrectAnswer: 1, Explanation: "Equity is fractional ownership."},
						{Prompt: "On a highly volatile day, prefer", Options: []string{"Market orders", "Limit orders", "No orders exist", "Phone orders"}, CorrectAnswer: 1, Explanation: "Limits protect you from wild execution prices."},
						{Prompt: "Share prices are set by", Options: []string{"The government", "The company CEO", "Buyers and sellers agreeing", "Banks"}, CorrectAnswer: 2, Explanation: "Exchanges match bids and asks continuously."},
					},
					Simulation: SimInvestment,
					CheatSheet: CheatSheet{
						Title: "Market and Limit Orders",
						Points: []string{
							"Market orders trade certainty of price for certainty of execution.",
							"Limit orders trade certainty of execution for certainty of price.",
							"Use limit orders on volatile days and for thinly traded stocks.",
						},
						DailyTip: "Look up the bid-ask spread of one stock you know.",
					},
				},
			},
		},
		{
			Title:       "Asset Allocation",
			Description: "Diversify across equity and debt to match your horizon.",
			Icon:        "layers",
			Lessons: []Lesson{
				{
					Title: "Splitting Equity and Debt",
					Sections: []Section{
						{Heading: "Why Allocation Matters", Body: "The split between equity and debt drives most of your portfolio's risk and return, far more than which fund you pick inside each bucket."},
						{Heading: "The Age Rule of Thumb", Body: "A classic starting point: hold 100 minus your age in equity. A 30-year-old starts near 70% equity; a 60-year-old near 40%. Adjust for your own risk tolerance."},
						{Heading: "Rebalance Yearly", Body: "Once a year, sell whichever bucket grew past its target and top up the other. Rebalancing quietly forces you to buy low and sell high."},
					},
					Calculator: Calculator{
						FormulaID: "asset-allocation",
						Inputs: []CalculatorInput{
							{Name: "age", Label: "Your Age", Min: 18, Max: 80, Step: 1, Default: 30},
							{Name: "amount", Label: "Portfolio Amount", Min: 10000, Max: 100000000, Step: 10000, Default: 1000000},
						},
					},
					Quiz: []QuizQuestion{
						{Prompt: "Most of a portfolio's risk comes from", Options: []string{"Fund selection", "The equity/debt split", "Brokerage fees", "Dividend dates"}, CorrectAnswer: 1, Explanation: "Allocation dominates outcomes over individual picks."},
						{Prompt: "The 100-minus-age rule suggests a 40-year-old holds", Options: []string{"40% equity", "60% equity", "100% equity", "No equity"}, CorrectAnswer: 1, Explanation: "100 - 40 = 60% in equity as a starting point."},
						{Prompt: "Rebalancing means", Options: []string{"Buying more of the winner", "Restoring your target split yearly", "Selling everything", "Changing brokers"}, CorrectAnswer: 1, Explanation: "Trim the overgrown bucket, top up the other."},
						{Prompt: "Diversification mainly protects against", Options: []string{"All losses", "Any single holding sinking the portfolio", "Taxes", "Inflation"}, CorrectAnswer: 1, Explanation: "Spreading bets limits single-point failures."},
						{Prompt: "As retirement nears, allocation should shift toward", Options: []string{"More equity", "More debt", "More crypto", "No change"}, CorrectAnswer: 1, Explanation: "Shorter horizons need steadier assets."},
					},
					Simulation: SimInvestment,
					CheatSheet: CheatSheet{
						Title: "Splitting Equity and Debt",
						Points: []string{
							"Your equity/debt split matters more than fund selection.",
							"Start from 100 minus your age in equity, then adjust for comfort.",
							"Rebalance once a year back to the target split.",
						},
						DailyTip: "Write down your current equity and debt percentages from memory, then verify.",
					},
				},
			},
		},
		{
			Title:       "Taxes",
			Description: "Old regime or new? Know what you actually owe.",
			Icon:        "receipt",
			Lessons: []Lesson{
				{
					Title: "Old Regime vs New Regime",
					Sections: []Section{
						{Heading: "Two Parallel Systems", Body: "The old regime offers deductions (80C investments, health insurance, NPS) against higher slab rates. The new regime drops most deductions for lower, smoother slabs."},
						{Heading: "Slabs Are Marginal", Body: "Only the income inside a slab is taxed at that slab's rate. Moving into a higher slab never reduces your take-home pay."},
						{Heading: "Compare Every Year", Body: "The better regime depends on how much you actually deduct. Heavy 80C and insurance users often win under the old regime; everyone else usually wins under the new."},
					},
					Calculator: Calculator{
						FormulaID: "tax-regimes",
						Inputs: []CalculatorInput{
							{Name: "gross", Label: "Gross Annual Income", Min: 0, Max: 10000000, Step: 10000, Default: 1000000},
							{Name: "sec80c", Label: "80C Investments", Min: 0, Max: 150000, Step: 5000, Default: 150000},
							{Name: "sec80d", Label: "Health Insurance (80D)", Min: 0, Max: 100000, Step: 5000, Default: 25000},
							{Name: "nps", Label: "NPS Contribution", Min: 0, Max: 50000, Step: 5000, Default: 0},
						},
					},
					Quiz: []QuizQuestion{
						{Prompt: "Marginal tax slabs mean", Options: []string{"All income taxed at the top rate", "Only income within a slab is taxed at its rate", "Tax is flat", "Tax is optional"}, CorrectAnswer: 1, Explanation: "Each slab rate applies only to income inside that slab."},
						{Prompt: "The new regime generally offers", Options: []string{"More deductions", "Lower slab rates with fewer deductions", "No tax", "Higher rates"}, CorrectAnswer: 1, Explanation: "It trades deductions for smoother, lower slabs."},
						{Prompt: "Section 80C covers up to", Options: []string{"50,000", "1,00,000", "1,50,000", "5,00,000"}, CorrectAnswer: 2, Explanation: "80C investments are capped at 1.5 lakh under the old regime."},
						{Prompt: "Earning into a higher slab", Options: []string{"Can lower take-home pay", "Never lowers take-home pay", "Doubles your tax", "Is illegal"}, CorrectAnswer: 1, Explanation: "Only the income above the threshold is taxed at the higher rate."},
						{Prompt: "Who most likely benefits from the old regime?", Options: []string{"Someone with zero deductions", "Someone maxing 80C, 80D and NPS", "Students", "Everyone equally"}, CorrectAnswer: 1, Explanation: "Heavy deduction users offset the old regime's higher rates."},
					},
					Simulation: SimBudget,
					CheatSheet: CheatSheet{
						Title: "Old Regime vs New Regime",
						Points: []string{
							"Slabs are marginal; a raise never shrinks take-home pay.",
							"Old regime: deductions against higher rates. New regime: lower rates, few deductions.",
							"Recompute the comparison every year; the answer changes with your deductions.",
						},
						DailyTip: "Find last year's total 80C contributions in your records.",
					},
				},
			},
		},
	}
}
