/*
Package client defines the boundary between redshiftctl and the AWS SDK.

API lists the Redshift client methods redshiftctl calls; *redshift.Client from
aws-sdk-go-v2 satisfies it, as does the in-memory fake in client/mock. Request
signing, retries and transport belong to the SDK.

	api, err := client.New(ctx, client.Config{Region: "us-east-1", Profile: "analytics"})
	if err != nil {
	    return err
	}
	svc := redshiftctl.New(api, redshiftctl.WithRegion("us-east-1"))
*/
package client
