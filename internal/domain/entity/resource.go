package entity

// ResourceSummary holds aggregated resource counts for one account/region.
// Counts reflect a single unpaginated listing call each, so very large
// accounts only see the first page.
type ResourceSummary struct {
	EC2Instances int `json:"ec2_instances"`
	S3Buckets    int `json:"s3_buckets"`
}
