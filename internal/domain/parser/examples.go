package parser

// GenerateOrganizationsExample returns a starter organizations text for the
// editing surface. Parsing it back through the engine validates cleanly.
func GenerateOrganizationsExample() string {
	return `[OrganizationName]
region = us-east-1
roleName = Administrator
baseURL = https://d-XXXXXX.awsapps.com
altRoles = Developer, PowerUser
default = true

[AnotherOrg]
region = us-west-2
roleName = Developer
baseURL = https://d-123456.awsapps.com`
}

// GenerateAccountsExample returns a starter accounts text referencing the
// organizations example.
func GenerateAccountsExample() string {
	return `[AccountName]
aws_account_id = 123456789012
defaults = OrganizationName
group = GroupName

[AnotherAccount]
aws_account_id = 123456789012
defaults = OrganizationName
group = GroupName
region = us-west-2
roleName = Developer

[AnotherAccount2]
aws_account_id = 123456789012
defaults = OrganizationName
group = Group2`
}

// GenerateExample returns a starter text in the legacy combined format,
// mixing organizations, defaults profiles and accounts in one document.
func GenerateExample() string {
	return `### Organizations
[Corpay]
organization = true
region = us-east-1
roleName = FC-Admin

[AnotherOrg]
organization = true
region = us-west-2
roleName = Admin

### Defaults (can reference organizations)
[CorpayDefaults]
defaults = Corpay
group = CorpayAccounts

[AnotherOrgDefaults]
defaults = AnotherOrg
group = AnotherOrgAccounts

### CorpayComplete Accounts
[Accrulify]
aws_account_id = 415867864530
defaults = Corpay
group = CorpayComplete

[CorpayComplete Main]
aws_account_id = 123456789012
defaults = Corpay
group = CorpayComplete

### Fuels Accounts
[Fuels Dev]
aws_account_id = 924615357380
defaults = Corpay
group = Fuels

[Fuels QA]
aws_account_id = 812998806105
defaults = Corpay
group = Fuels

[Fuels Prod]
aws_account_id = 987654321098
defaults = Corpay
group = Fuels

### Another Organization Accounts
[AnotherOrg Dev]
aws_account_id = 111111111111
defaults = AnotherOrg
group = Development

[AnotherOrg Prod]
aws_account_id = 222222222222
defaults = AnotherOrg
group = Production

### Development Accounts
[Dev Sandbox]
aws_account_id = 333333333333
region = us-west-2
roleName = Developer
group = Development`
}
