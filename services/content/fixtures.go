package content

import "akshara/models"

// Fixed site fixtures. Unlike founders/programs/events these never change
// between deployments, so they live in-process rather than in MongoDB.

var orgDetails = models.OrgDetails{
	Name:       "Akshara Bharata Society",
	ShortIntro: "An NGO whose objective is to bring quality in Education and support the students.",
	Location:   "Rambilli mandal, Visakhapatnam, India, Andhra Pradesh",
	Phone:      "072594 90606",
	Email:      "aksharabharatamsociety@gmail.com",
	Blog:       "aksharabharatamsociety.blogspot.com",
	Latitude:   17.5196,
	Longitude:  82.8465,
}

var siteStats = []models.Stat{
	{Label: "Students Reached", Value: "15000"},
	{Label: "Volunteers", Value: "450"},
	{Label: "Programs Run", Value: "25"},
	{Label: "Lives Impacted", Value: "50000"},
}

var siteTestimonials = []models.Testimonial{
	{
		Quote:  "The scholarship I received changed my life. I am now the first graduate in my family.",
		Author: "Ravi Teja",
		Role:   "Engineering Student",
	},
	{
		Quote:  "Volunteering with Akshara Bharatham helped me realize the power of community.",
		Author: "Sarah Jenkins",
		Role:   "Volunteer",
	},
	{
		Quote:  "Their dedication to rural education is unmatched. A truly transparent organization.",
		Author: "Mr. Rao",
		Role:   "Local Donor",
	},
	{
		Quote:  "I saw firsthand how the computer labs transformed the confidence of these village kids.",
		Author: "Vikram Singh",
		Role:   "Tech Sponsor",
	},
	{
		Quote:  "Education is the only way forward, and this team knows how to deliver it where it matters.",
		Author: "Dr. Anitha",
		Role:   "Educationist",
	},
}

var galleryImages = []string{
	"https://images.unsplash.com/photo-1564951434112-64d74cc2a2d7?auto=format&fit=crop&q=80&w=800",
	"https://images.unsplash.com/photo-1596386461350-326e974853b6?auto=format&fit=crop&q=80&w=800",
	"https://images.unsplash.com/photo-1544928147-79a774562149?auto=format&fit=crop&q=80&w=800",
	"https://images.unsplash.com/photo-1509062522246-3755977927d7?auto=format&fit=crop&q=80&w=800",
	"https://images.unsplash.com/photo-1517048676732-d65bc937f952?auto=format&fit=crop&q=80&w=800",
}

var legalDocs = map[string]string{
	"privacy": `# Privacy Policy

**Effective Date:** January 1, 2024

At Akshara Bharatham Society, we are committed to protecting your privacy and ensuring the security of your personal information.

## 1. Information We Collect
We collect personal information that you voluntarily provide to us when you donate to our cause, register as a volunteer, subscribe to our newsletter, or contact us. This information may include your name, email address, phone number, mailing address, and payment details (processed securely by third-party payment gateways; we do not store full credit card numbers).

## 2. How We Use Your Information
- **Donation Processing:** To process your donations, issue tax-exemption receipts (80G), and keep a record of your contributions.
- **Communication:** To send you updates, newsletters, and information about our programs, events, and volunteer opportunities.
- **Improvement:** To analyze website usage trends and improve our digital services.
- **Legal Compliance:** To comply with applicable laws and regulations regarding non-profit operations.

## 3. Data Sharing and Security
We do not sell, trade, or rent your personal identification information to others. We implement appropriate data collection, storage, and processing practices and security measures to protect against unauthorized access, alteration, disclosure, or destruction of your personal information.

## 4. Your Rights
You have the right to request access to the personal information we hold about you and to ask for your data to be corrected or deleted. You can unsubscribe from our mailing lists at any time.

## 5. Contact Us
**Email:** aksharabharatamsociety@gmail.com
**Phone:** 072594 90606`,

	"terms": `# Terms of Service

**Last Updated:** January 1, 2024

Welcome to the Akshara Bharata Society website. By accessing or using our website, you agree to be bound by these Terms of Service and all applicable laws and regulations.

## 1. Use License
Permission is granted to temporarily download one copy of the materials on this website for personal, non-commercial transitory viewing only. Under this license you may not modify or copy the materials, use them for any commercial purpose, attempt to decompile any software contained on the website, remove any proprietary notations, or mirror the materials on any other server.

## 2. Disclaimer
The materials on this website are provided on an 'as is' basis. Akshara Bharata Society makes no warranties, expressed or implied, and hereby disclaims all other warranties including, without limitation, implied warranties of merchantability or fitness for a particular purpose.

## 3. Limitations
In no event shall Akshara Bharata Society or its suppliers be liable for any damages arising out of the use or inability to use the materials on this website.

## 4. Accuracy of Materials
The materials appearing on this website could include technical, typographical, or photographic errors. We may make changes to the materials at any time without notice.

## 5. Governing Law
These terms and conditions are governed by and construed in accordance with the laws of Andhra Pradesh, India.`,

	"cookies": `# Cookie Policy

This Cookie Policy explains what cookies are, how we use them, and your choices regarding cookies.

## 1. What are cookies?
Cookies are small text files that are sent to your web browser by a website you visit, allowing the site to recognize you and make your next visit easier.

## 2. How Akshara Bharata Society uses cookies
- **Essential Cookies:** To enable certain functions of the Service, such as remembering your preferences.
- **Analytics Cookies:** To track how the Service is used so that we can make improvements.

## 3. Third-party cookies
We may also use various third-party cookies to report usage statistics of the Service.

## 4. What are your choices regarding cookies?
If you'd like to delete cookies or instruct your web browser to refuse them, please visit the help pages of your web browser. Some features may not work without cookies.`,

	"financials": `# Financial Reports & Transparency

Transparency is one of the core pillars of Akshara Bharata Society. We believe our donors and stakeholders have the right to know exactly how their contributions are being utilized.

## Financial Year 2023-2024 Overview
- **Total Donations Received:** ₹50,00,000
- **Total Expenditure:** ₹48,50,000
- **Surplus carried forward:** ₹1,50,000

### Expenditure Breakdown
1. **Program Expenses (80%):** Direct costs related to running schools, buying books, teacher salaries, and digital lab setups.
2. **Administrative Expenses (10%):** Office rent, utilities, and staff salaries.
3. **Fundraising Expenses (10%):** Event costs and marketing.

## FCRA Compliance
Akshara Bharata Society is fully compliant with the Foreign Contribution Regulation Act (FCRA) and is eligible to receive foreign funds.

For any specific financial queries, please reach out to our Finance Officer at finance@aksharabharatam.org.`,
}
