package seradeck

// Placeholder shown wherever a monetary amount is still open.
const Placeholder = "[يُحدد لاحقاً]"

var (
	cover   = Cover{Title: "SERA 2026", Org: "هيئة تنظيم الكهرباء", Tagline: "العرض الفني"}
	closing = Cover{Title: "SERA 2026", Org: "هيئة تنظيم الكهرباء", Tagline: "شكراً لكم"}
)

const (
	quarter1    = "فعاليات الربع الأول"
	quarter2    = "فعاليات الربع الثاني"
	quarter3    = "فعاليات الربع الثالث"
	quarter4    = "فعاليات الربع الرابع"
	sportsTitle = "الفعاليات الرياضية"
	budgetTitle = "ملخص الميزانية"
)

var contents = []TOCEntry{
	{"نظرة عامة على البرنامج", "03"},
	{"فعاليات الربع الأول (Q1)", "05"},
	{"فعاليات الربع الثاني (Q2)", "10"},
	{"فعاليات الربع الثالث (Q3)", "14"},
	{"فعاليات الربع الرابع (Q4)", "18"},
	{sportsTitle, "25"},
	{budgetTitle, "27"},
}

var overviewFacts = []Fact{
	{"إجمالي الفعاليات", "44 فعالية"},
	{"فعاليات Q1", "9 فعاليات"},
	{"فعاليات Q2", "8 فعاليات"},
	{"فعاليات Q3", "8 فعاليات"},
	{"فعاليات Q4", "16 فعالية"},
	{sportsTitle, "3 فعاليات"},
}

var overviewDetails = []Detail{
	{"الموقع", "جميع الفعاليات في مدينة الرياض - المملكة العربية السعودية"},
	{"عمولة الوكالة", "15% على جميع الفعاليات"},
}

var categories = []Detail{
	{"المؤتمرات والاحتفالات", "الاجتماع السنوي، احتفالات الأعياد، اليوم الوطني، حفل نهاية العام"},
	{"الاحتفالات الوطنية", "يوم التأسيس، يوم العلم السعودي، اليوم الوطني (96)"},
	{"التوعية الصحية", "التبرع بالدم، مكافحة التدخين، الصحة النفسية، السكري"},
	{"التطوير المهني", "يوم الإبداع والابتكار، برنامج تزوّد، يوم الجودة"},
	{"المسؤولية الاجتماعية", "حملة إحسان، كسوة فرح، يوم التطوع"},
	{"الفعاليات العائلية", "صيف سيرا، شتوية سيرا، يوم الطفل العالمي"},
}

var sections = struct {
	Q1, Q2, Q3, Q4, Sports, Budget Section
}{
	Q1:     Section{Title: quarter1, Subtitle: "القسم الأول", Detail: "9 فعاليات | يناير - مارس 2026"},
	Q2:     Section{Title: quarter2, Subtitle: "القسم الثاني", Detail: "8 فعاليات | أبريل - يونيو 2026"},
	Q3:     Section{Title: quarter3, Subtitle: "القسم الثالث", Detail: "8 فعاليات | يوليو - سبتمبر 2026"},
	Q4:     Section{Title: quarter4, Subtitle: "القسم الرابع", Detail: "16 فعالية | أكتوبر - ديسمبر 2026"},
	Sports: Section{Title: sportsTitle, Subtitle: "القسم الخامس", Detail: "3 فعاليات رياضية"},
	Budget: Section{Title: budgetTitle, Subtitle: "القسم السادس", Detail: "نظرة عامة على التكاليف"},
}

var annualMeeting = EventDetail{
	Title:      "1. الاجتماع السنوي 2026",
	Date:       "3 فبراير",
	Attendance: "300 شخص",
	Level:      "كبير (Major)",
	Venue:      "قاعة فندق 5 نجوم (ريتز كارلتون / فور سيزونز)",
	Stage:      "مسرح 8م×5م، خلفية تحمل العلامة التجارية، منصة مع شعار SERA",
	AV:         "شاشة LED P2.5 (5م×3م)، نظام صوت Line-array، 6 ميكروفونات لاسلكية، بث مباشر",
	Services:   "ترجمة فورية عربي/إنجليزي، مقدم برامج محترف، نظام تسجيل QR، تصوير (2)، فيديو (2)، مطبوعات",
}

var q1Events = [][]Card{
	{
		{"2. يوم التأسيس - 22 فبراير",
			"المكان: مقر SERA - داخلي | الحضور: 300 شخص | الفئة: احتفال وطني\nالديكور: عروض تراثية، ثيم يوم التأسيس الوطني\nالخدمات: عروض تراثية، هدايا تذكارية، تغطية مباشرة على وسائل التواصل الاجتماعي", 0},
		{"3. يوم تقدير الموظف - 2 مارس",
			"المكان: فندق 5 نجوم - حفل عشاء | الحضور: 300 شخص | الفئة: حفل تكريم\nالديكور: مسرح للحفل، ديكور فاخر، إضاءة علوية، منصات الجوائز\nالخدمات: 12 كأس كريستال، فرقة موسيقية حية (2.5 ساعة)، صناديق هدايا، مقدم برامج محترف", 1},
	},
	{
		{"4. اليوم العالمي للمرأة - 8 مارس",
			"المكان: مكان أنيق أو قسم السيدات في فندق | الحضور: 150 شخص\nالديكور: ديكور أنثوي أنيق، تنسيقات زهور فاخرة\nالخدمات: متحدثة رئيسية + جلسة نقاشية (3 متحدثات)، ركن تصوير، حقائب هدايا، مصورة", 2},
		{"5. يوم العلم السعودي - 11 مارس",
			"المكان: مقر SERA - البهو والمنطقة الخارجية | الحضور: 300 شخص\nالديكور: علم سعودي كبير (5م+)، ثيم أخضر وأبيض وطني\nالخدمات: مراسم رفع العلم، هدايا تذكارية، تغطية مباشرة على وسائل التواصل", 1},
	},
	{
		{"6. إفطار رمضان - منتصف مارس",
			"المكان: خيمة رمضانية في فندق 5 نجوم | الحضور: 300 شخص\nالديكور: ديكور رمضاني تقليدي: فوانيس، أهلّة، مجلس VIP\nالخدمات: بوفيه إفطار فاخر، عازف عود، صناديق هدايا رمضانية، ترتيب مصلى", 0},
		{"7. يوم الأم - 21 مارس",
			"المكان: قسم خاص في مطعم أنيق | الحضور: 130 شخص\nالديكور: ثيم الزهور، منطقة تصوير\nالخدمات: هدايا زهور، هدايا خاصة للأمهات، ترفيه، تصوير فوتوغرافي", 2},
	},
	{
		{"8. المبادرة الخضراء السعودية - 27 مارس",
			"المكان: مقر SERA - منطقة المعارض | الحضور: 250 شخص\nالديكور: أكشاك بثيم الاستدامة الخضراء، عروض بيئية\nالخدمات: خبير بيئي، معارض خضراء، هدايا صديقة للبيئة، عروض استدامة", 1},
		{"9. حملة إحسان الخيرية - مارس",
			"المكان: مقر SERA - منطقة البهو | الحضور: 200 شخص\nالديكور: عروض منصة إحسان، محطات التبرع\nالخدمات: كشك توعية بالحملة، محطات تبرع QR، عرض قصص التأثير", 0},
	},
}

var eidAlFitr = EventDetail{
	Title:      "10. احتفال عيد الفطر",
	Date:       "أوائل أبريل",
	Attendance: "300 شخص",
	Level:      "كبير (Major)",
	Venue:      "القاعة الكبرى في فندق 5 نجوم",
	Stage:      "ديكور عيد احتفالي ذهبي وأبيض، مسرح كبير، قوس مدخل",
	AV:         "إنتاج كامل: شاشة LED، صوت حفلات، تصميم إضاءة",
	Services:   "فرقة عرضة + موسيقى حية، هدايا العيد، ركن للأطفال (اختياري)، مقدم برامج محترف",
}

var q2Pair = []Card{
	{"11. يوم الإبداع والابتكار - 21 أبريل",
		"المكان: مركز مؤتمرات | الحضور: 200 شخص\nالديكور: مسرح رئيسي + 10 أكشاك ابتكار للأقسام\nالخدمات: متحدث رئيسي، مسابقة ابتكار، 7 جوائز، تصويت تفاعلي", 3},
	{"12. اليوم العالمي للشاي - 21 مايو",
		"المكان: مقر SERA - المناطق المشتركة | الحضور: 250 شخص\nالديكور: ديكور بثيم الشاي، 3 محطات خدمة\nالخدمات: محطات شاي عربي/إنجليزي/آسيوي، مرافقات ذواقة، عروض ثقافة الشاي", 0},
}

var q2Quad = []Detail{
	{"13. كسوة فرح - مايو", "المكان: مقر SERA | الحضور: 200\nنقاط جمع، تنسيق المتطوعين، لوجستيات الفرز والتوزيع"},
	{"14. مكافحة التدخين - 31 مايو", "المكان: مقر SERA | الحضور: 200\nمتحدث صحي، محطة فحص CO، مواد توعوية"},
	{"15. يوم التبرع بالدم - 14 يونيو", "المكان: مقر SERA | الحضور: 120\nشراكة الهلال الأحمر، هدايا وشهادات للمتبرعين"},
	{"16. يوم الأب - 15 يونيو", "المكان: مطعم / قاعة | الحضور: 160\nهدايا للآباء، أنشطة بناء فريق"},
}

var eidAlAdha = Detail{
	Title: "17. احتفال عيد الأضحى - منتصف يونيو",
	Body:  "القاعة الكبرى في فندق 5 نجوم | 300 شخص | عرضة + موسيقى حية، وليمة، هدايا العيد، مقدم برامج",
}

var seraSummer = EventDetail{
	Title:      "18. صيف سيرا",
	Date:       "20 يوليو",
	Attendance: "500 شخص",
	Level:      "كبير (Major)",
	Venue:      "مكان ترفيهي - مساءً فقط (حرارة 45 درجة مئوية)",
	Stage:      "مناطق متعددة: مسرح رئيسي، منطقة أطفال، منطقة طعام، ألعاب",
	AV:         "صوت وإضاءة خارجية بمستوى حفلات موسيقية",
	Services:   "ترفيه رئيسي، منطقة أطفال، 10 أكشاك ألعاب، مهرجان طعام، سحب، هدايا عائلية",
}

var q3Quad = []Detail{
	{"19. شتوية سيرا - 19 أغسطس", "المكان: مكان داخلي مكيف | الحضور: 300\nثيم أرض العجائب الشتوية، مؤثرات ثلجية، برنامج ترفيهي"},
	{"20. الإسعافات الأولية - 13 سبتمبر", "المكان: مقر SERA | الحضور: 200\nورشة CPR، حقائب إسعافات، خبير مسعف، شهادات"},
	{"21. تزوّد - سبتمبر", "المكان: مركز تدريب | الحضور: 200\nمدربين خبراء (جلستين)، مواد تدريبية، شهادات"},
	{"22. الزهايمر - 21 سبتمبر", "المكان: مقر SERA | الحضور: 200\nمتحدث رعاية صحية، شرائط بنفسجية، عروض توعوية"},
}

var q3Trio = []Card{
	{"23. وش دورنا - سبتمبر",
		"المكان: مقر SERA - قاعة اجتماعات | الحضور: 200 شخص\nالخدمات: ميسر محترف، تمارين تفاعلية، أدلة الأدوار، أنشطة فريق", 0},
	{"24. اليوم الوطني السعودي (96) - 23 سبتمبر",
		"المكان: مكان فاخر مع خيار خارجي | الحضور: 300 شخص\nالديكور: ديكور وطني أخضر فاخر، أعلام، رموز وطنية\nالخدمات: فرقة عرضة، عروض ثقافية، هدايا وطنية، إضاءة خضراء. يجب الحجز قبل 3-4 أشهر", 2},
	{"25. أسبوع البيئة - Q3",
		"المكان: مقر SERA - منطقة معارض (5 أيام) | الحضور: 250 شخص\nالخدمات: برنامج 5 أيام، متحدثون خبراء، زراعة أشجار، ورش بيئية، أنشطة خضراء", 0},
}

var q4Trio = []Card{
	{"26. اليوم العالمي للقهوة - 1 أكتوبر",
		"المكان: مقر SERA - المناطق المشتركة | الحضور: 250 شخص\nالخدمات: باريستا محترف، مراسم الدلة العربية، عروض ثقافة القهوة", 0},
	{"27. التوعية بسرطان الثدي - أكتوبر",
		"المكان: مقر SERA - منطقة الصحة | الحضور: 200 شخص\nالخدمات: خبير رعاية صحية، معلومات فحص، عناصر توعية وردية", 1},
	{"28. معرض الأمن السيبراني - أكتوبر",
		"المكان: مقر SERA / مركز مؤتمرات | الحضور: 250 شخص\nالخدمات: 6 عروض تفاعلية، 2 متحدثين خبراء، محاكاة تصيد، هدايا ترويجية", 0},
}

var q4Quads = [][]Detail{
	{
		{"29. الصحة النفسية - 10 أكتوبر", "المكان: مقر SERA | الحضور: 200\nمتحدث نفسي، ورشة إدارة الضغط، منطقة استرخاء"},
		{"30. يوم الادخار - 31 أكتوبر", "المكان: مقر SERA | الحضور: 200\nخبير مالي، أدلة ادخار، مخططات ميزانية"},
		{"31. يوم الجودة - 10 نوفمبر", "المكان: فندق أعمال | الحضور: 180\n7 جوائز جودة، عروض أفضل الممارسات، متحدث خبير"},
		{"32. التطعيم ضد الإنفلونزا - نوفمبر", "المكان: مقر SERA | الحضور: 250\nطاقم طبي، لوجستيات التطعيم، هدايا للمشاركين"},
	},
	{
		{"33. يوم السكري - 14 نوفمبر", "المكان: مقر SERA | الحضور: 200\nأخصائي غدد صماء، فحص سكر الدم، عناصر توعية زرقاء"},
		{"34. يوم الرجل - 19 نوفمبر", "المكان: قاعة فعاليات | الحضور: 200\nمسابقات فريق، هدايا تقدير"},
		{"35. يوم الطفل - 20 نوفمبر", "المكان: مكان ترفيهي عائلي | الحضور: 200\nمنشطين أطفال محترفين، محطات ألعاب، هدايا"},
		{"36. يوم التطوع - 5 ديسمبر", "المكان: موقع مجتمعي | الحضور: 80\nحافلتين نقل، قمصان متطوعين، صناديق غداء"},
	},
	{
		{"37. مكافحة الفساد - 9 ديسمبر", "المكان: مقر SERA | الحضور: 200\nمتحدث أخلاقيات/نزاهة، توقيع تعهدات، كتيبات"},
		{"38. أنشطة التحول - Q4", "المكان: مقر SERA | الحضور: 200\nجلسات خبراء، ورش تحول، أنشطة تفكير تصميمي"},
		{"39. المكتب المثالي - Q4", "المكان: جميع مكاتب SERA | الحضور: 200\nبرنامج تقييم، لجنة تحكيم، حفل جوائز، كؤوس"},
		{"40. يوم اللغة العربية - 18 ديسمبر", "المكان: مكان ثقافي | الحضور: 200\nشاعر ضيف، ورشة خط عربي، أمسية شعرية"},
	},
}

var yearEndParty = EventDetail{
	Title:      "41. حفل نهاية العام",
	Date:       "أواخر ديسمبر",
	Attendance: "300 شخص",
	Level:      "كبير (Major)",
	Venue:      "فندق 5 نجوم - حفل فاخر",
	Stage:      "مسرح فاخر، تصميم إضاءة LED، طاولات فاخرة",
	AV:         "حفل كامل: شاشة LED، صوت حفلات موسيقية، إضاءة مصممة",
	Services:   "فرقة موسيقية فاخرة + عروض، 15 جائزة سنوية، فيديو مراجعة العام، هدايا فاخرة، مقدم برامج. يجب الحجز قبل 3 أشهر",
}

var sportsEvents = []ColoredCard{
	{"S1. بطولة كرة القدم", "الموعد: يحدد لاحقاً (3 عطلات نهاية أسبوع) | الفئة: مسابقة رياضية | الحضور: 150 شخص | المستوى: كبير", Green},
	{"S2. بطولة البادل", "الموعد: يحدد لاحقاً (عطلتي نهاية أسبوع) | الفئة: مسابقة رياضية | الحضور: 20 شخص | المستوى: متوسط", LightBlue},
	{"S3. تحدي المشي + جمعة سيرا", "الموعد: ربع سنوي + سنوي | الفئة: رياضة وعافية | الحضور: 200 شخص | المستوى: متوسط", Orange},
}

var budgetSummary = Budget{
	Facts: []Fact{
		{"فعاليات Q1", "9 فعاليات"},
		{"فعاليات Q2", "8 فعاليات"},
		{"فعاليات Q3", "8 فعاليات"},
		{"فعاليات Q4", "16 فعالية"},
		{sportsTitle, "3 فعاليات"},
		{"إجمالي الفعاليات", "44 فعالية"},
	},
	Details: []Detail{
		{"الإجمالي قبل الضريبة (ريال سعودي)", Placeholder},
		{"ضريبة القيمة المضافة (15%)", Placeholder},
	},
	TotalLabel: "★ الإجمالي الكلي شامل الضريبة",
	TotalValue: Placeholder,
}
