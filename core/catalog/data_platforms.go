// Package catalog - Built-in cloud platform catalogs
// Products carry an authorial popularity rank (1 = most popular).
// That rank is unrelated to the heuristic popularity score used by the
// gap analysis.
package catalog

import "stack-advisor/core/types"

// RegisterPlatforms populates the catalog with the built-in cloud
// platforms, their products, and their service mappings.
func RegisterPlatforms(c *Catalog) {
	c.RegisterPlatform(awsPlatform())
	c.RegisterPlatform(azurePlatform())
	c.RegisterPlatform(gcpPlatform())
}

func awsPlatform() types.CloudPlatform {
	return types.CloudPlatform{
		CatalogItem: types.CatalogItem{
			ID:                       "aws",
			Name:                     "Amazon Web Services",
			Complexity:               types.LevelIntermediate,
			Pricing:                  "Pay as you go, free tier for 12 months",
			BestFor:                  "Teams of any size needing the broadest service catalog",
			ComplianceCertifications: []string{"SOC2", "HIPAA", "PCI"},
		},
		TargetPersonas:         []string{"startup", "enterprise", "data-engineer", "devops"},
		SupportedArchitectures: []string{"monolith", "microservices", "serverless", "event-driven"},
		Products: []types.CloudProduct{
			{
				CatalogItem:            types.CatalogItem{ID: "ec2", Name: "Amazon EC2", Pricing: "From $0.0042/hour, free tier eligible"},
				Category:               "compute", Subcategory: "virtual-machines", PopularityRank: 1,
				SupportedArchitectures: []string{"monolith", "microservices"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "lambda", Name: "AWS Lambda", Pricing: "Free tier of 1M requests/month"},
				Category:               "compute", Subcategory: "serverless-functions", PopularityRank: 2,
				SupportedArchitectures: []string{"serverless", "event-driven"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "eks", Name: "Amazon EKS", Pricing: "$0.10/hour per cluster"},
				Category:               "compute", Subcategory: "containers", PopularityRank: 3,
				SupportedArchitectures: []string{"microservices"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "rds", Name: "Amazon RDS", Pricing: "From $0.017/hour, free tier eligible"},
				Category:               "database", Subcategory: "relational", PopularityRank: 1,
				SupportedArchitectures: []string{"monolith", "microservices", "serverless"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "aurora", Name: "Amazon Aurora", Pricing: "From $0.073/hour"},
				Category:               "database", Subcategory: "relational", PopularityRank: 2,
				SupportedArchitectures: []string{"monolith", "microservices", "serverless"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "redshift", Name: "Amazon Redshift", Pricing: "From $0.25/hour"},
				Category:               "database", Subcategory: "relational", PopularityRank: 3,
				SupportedArchitectures: []string{"monolith", "microservices"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "dynamodb", Name: "Amazon DynamoDB", Pricing: "Free tier of 25GB storage"},
				Category:               "database", Subcategory: "nosql", PopularityRank: 4,
				SupportedArchitectures: []string{"microservices", "serverless", "event-driven"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "s3", Name: "Amazon S3", Pricing: "From $0.023/GB/month, free tier eligible"},
				Category:               "storage", Subcategory: "object", PopularityRank: 1,
				SupportedArchitectures: []string{"monolith", "microservices", "serverless", "event-driven"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "sqs", Name: "Amazon SQS", Pricing: "Free tier of 1M requests/month"},
				Category:               "messaging", Subcategory: "queues", PopularityRank: 1,
				SupportedArchitectures: []string{"microservices", "serverless", "event-driven"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "sns", Name: "Amazon SNS", Pricing: "Free tier of 1M publishes/month"},
				Category:               "messaging", Subcategory: "pubsub", PopularityRank: 2,
				SupportedArchitectures: []string{"microservices", "serverless", "event-driven"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "cloudwatch", Name: "Amazon CloudWatch", Pricing: "Free tier of 10 custom metrics"},
				Category:               "monitoring", PopularityRank: 1,
				SupportedArchitectures: []string{"monolith", "microservices", "serverless", "event-driven"},
			},
		},
		Mappings: []types.ServiceProductMapping{
			{ServiceCategory: "database", ServiceName: "Database", IsDirectEquivalent: true, ProductID: "rds"},
			{ServiceCategory: "database", ServiceName: "NoSQL Store", IsDirectEquivalent: true, ProductID: "dynamodb"},
			{ServiceCategory: "storage", ServiceName: "Object Storage", IsDirectEquivalent: true, ProductID: "s3"},
			{ServiceCategory: "compute", ServiceName: "Functions", IsDirectEquivalent: true, ProductID: "lambda"},
			{ServiceCategory: "compute", ServiceName: "Container Orchestration", IsDirectEquivalent: true, ProductID: "eks"},
			{ServiceCategory: "messaging", ServiceName: "Message Queue", IsDirectEquivalent: true, ProductID: "sqs"},
			{ServiceCategory: "compute", ServiceName: "Mainframe", IsDirectEquivalent: false, Notes: "Mainframe workloads require migration tooling rather than a managed equivalent"},
		},
	}
}

func azurePlatform() types.CloudPlatform {
	return types.CloudPlatform{
		CatalogItem: types.CatalogItem{
			ID:                       "azure",
			Name:                     "Microsoft Azure",
			Complexity:               types.LevelIntermediate,
			Pricing:                  "Pay as you go, $200 credit for new accounts",
			BestFor:                  "Enterprise teams invested in the Microsoft ecosystem",
			ComplianceCertifications: []string{"SOC2", "HIPAA", "PCI"},
		},
		TargetPersonas:         []string{"enterprise", "dotnet-developer", "devops"},
		SupportedArchitectures: []string{"monolith", "microservices", "serverless"},
		Products: []types.CloudProduct{
			{
				CatalogItem:            types.CatalogItem{ID: "azure-vm", Name: "Azure Virtual Machines", Pricing: "From $0.004/hour"},
				Category:               "compute", Subcategory: "virtual-machines", PopularityRank: 1,
				SupportedArchitectures: []string{"monolith", "microservices"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "azure-functions", Name: "Azure Functions", Pricing: "Free tier of 1M executions/month"},
				Category:               "compute", Subcategory: "serverless-functions", PopularityRank: 2,
				SupportedArchitectures: []string{"serverless"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "azure-sql", Name: "Azure SQL Database", Pricing: "From $4.99/month"},
				Category:               "database", Subcategory: "relational", PopularityRank: 1,
				SupportedArchitectures: []string{"monolith", "microservices", "serverless"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "cosmos-db", Name: "Azure Cosmos DB", Pricing: "Free tier of 1000 RU/s"},
				Category:               "database", Subcategory: "nosql", PopularityRank: 2,
				SupportedArchitectures: []string{"microservices", "serverless"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "blob-storage", Name: "Azure Blob Storage", Pricing: "From $0.018/GB/month"},
				Category:               "storage", Subcategory: "object", PopularityRank: 1,
				SupportedArchitectures: []string{"monolith", "microservices", "serverless"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "service-bus", Name: "Azure Service Bus", Pricing: "From $0.05/million operations"},
				Category:               "messaging", Subcategory: "queues", PopularityRank: 1,
				SupportedArchitectures: []string{"microservices", "serverless"},
			},
		},
		Mappings: []types.ServiceProductMapping{
			{ServiceCategory: "database", ServiceName: "Database", IsDirectEquivalent: true, ProductID: "azure-sql"},
			{ServiceCategory: "storage", ServiceName: "Object Storage", IsDirectEquivalent: true, ProductID: "blob-storage"},
			{ServiceCategory: "compute", ServiceName: "Functions", IsDirectEquivalent: true, ProductID: "azure-functions"},
			{ServiceCategory: "messaging", ServiceName: "Message Queue", IsDirectEquivalent: true, ProductID: "service-bus"},
		},
	}
}

func gcpPlatform() types.CloudPlatform {
	return types.CloudPlatform{
		CatalogItem: types.CatalogItem{
			ID:                       "gcp",
			Name:                     "Google Cloud Platform",
			Complexity:               types.LevelIntermediate,
			Pricing:                  "Pay as you go, $300 credit for new accounts",
			BestFor:                  "Data-heavy teams and Kubernetes-first shops",
			ComplianceCertifications: []string{"SOC2", "HIPAA", "PCI"},
		},
		TargetPersonas:         []string{"startup", "data-engineer", "ml-engineer"},
		SupportedArchitectures: []string{"microservices", "serverless", "event-driven"},
		Products: []types.CloudProduct{
			{
				CatalogItem:            types.CatalogItem{ID: "gce", Name: "Compute Engine", Pricing: "From $0.006/hour, free tier eligible"},
				Category:               "compute", Subcategory: "virtual-machines", PopularityRank: 2,
				SupportedArchitectures: []string{"microservices"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "gke", Name: "Google Kubernetes Engine", Pricing: "Free tier of one zonal cluster"},
				Category:               "compute", Subcategory: "containers", PopularityRank: 1,
				SupportedArchitectures: []string{"microservices"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "cloud-functions", Name: "Cloud Functions", Pricing: "Free tier of 2M invocations/month"},
				Category:               "compute", Subcategory: "serverless-functions", PopularityRank: 3,
				SupportedArchitectures: []string{"serverless", "event-driven"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "cloud-sql", Name: "Cloud SQL", Pricing: "From $0.0105/hour"},
				Category:               "database", Subcategory: "relational", PopularityRank: 1,
				SupportedArchitectures: []string{"microservices", "serverless"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "firestore", Name: "Firestore", Pricing: "Free tier of 1GB storage"},
				Category:               "database", Subcategory: "nosql", PopularityRank: 2,
				SupportedArchitectures: []string{"serverless", "event-driven"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "gcs", Name: "Cloud Storage", Pricing: "From $0.02/GB/month, free tier eligible"},
				Category:               "storage", Subcategory: "object", PopularityRank: 1,
				SupportedArchitectures: []string{"microservices", "serverless", "event-driven"},
			},
			{
				CatalogItem:            types.CatalogItem{ID: "pubsub", Name: "Pub/Sub", Pricing: "Free tier of 10GB/month"},
				Category:               "messaging", Subcategory: "pubsub", PopularityRank: 1,
				SupportedArchitectures: []string{"microservices", "serverless", "event-driven"},
			},
		},
		Mappings: []types.ServiceProductMapping{
			{ServiceCategory: "database", ServiceName: "Database", IsDirectEquivalent: true, ProductID: "cloud-sql"},
			{ServiceCategory: "storage", ServiceName: "Object Storage", IsDirectEquivalent: true, ProductID: "gcs"},
			{ServiceCategory: "compute", ServiceName: "Functions", IsDirectEquivalent: true, ProductID: "cloud-functions"},
			{ServiceCategory: "compute", ServiceName: "Container Orchestration", IsDirectEquivalent: true, ProductID: "gke"},
			{ServiceCategory: "messaging", ServiceName: "Message Queue", IsDirectEquivalent: false},
		},
	}
}
