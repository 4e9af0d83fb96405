// internal/registry/demo.go
package registry

// demoRegistry returns the built-in offline registry used when the source
// file is missing or unparsable. Three records spanning three domains and
// three lifecycle stages, so every filter panel has something to show.
func demoRegistry(source string) *Registry {
	return &Registry{
		Source: source,
		Demo:   true,
		Records: []Record{
			{
				ModelName:              "Credit Risk PD",
				Domain:                 "Banking",
				ModelStage:             "prod",
				OwnerTeam:              "Risk Analytics",
				LastRetrainedDate:      "2025-11-02",
				SLATier:                "Gold",
				MonitoringStatus:       "Healthy",
				ApprovalStatus:         "Approved",
				InferenceEndpointID:    "ep-credit-risk-pd-001",
				FeatureStoreDependency: "fs-credit-bureau-v3",
			},
			{
				ModelName:              "Customer Churn Propensity",
				Domain:                 "Retail",
				ModelStage:             "canary",
				OwnerTeam:              "Growth ML",
				LastRetrainedDate:      "2025-10-18",
				SLATier:                "Silver",
				MonitoringStatus:       "Drift detected",
				ApprovalStatus:         "Approved",
				InferenceEndpointID:    "ep-churn-propensity-014",
				FeatureStoreDependency: "fs-customer-360",
			},
			{
				ModelName:              "Realtime Payment Fraud",
				Domain:                 "Payments",
				ModelStage:             "shadow",
				OwnerTeam:              "Fraud Intelligence",
				LastRetrainedDate:      "2025-12-01",
				SLATier:                "Gold",
				MonitoringStatus:       "Healthy",
				ApprovalStatus:         "Pending review",
				InferenceEndpointID:    "ep-payment-fraud-007",
				FeatureStoreDependency: "fs-transactions-stream",
			},
		},
	}
}
