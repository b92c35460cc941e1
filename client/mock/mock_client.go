/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of client.API for testing
package mock

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/redshift"
	"github.com/aws/aws-sdk-go-v2/service/redshift/types"
	"github.com/aws/smithy-go"

	"github.com/suparena/redshiftctl/client"
)

var _ client.API = (*Client)(nil)

// Service page size limits for Describe* calls.
const (
	MinRecords = 20
	MaxRecords = 100
)

// Call records one API invocation.
type Call struct {
	Operation  string
	Marker     *string
	MaxRecords *int32
}

// Client is an in-memory Redshift control plane. Listing calls page through
// the stored resources with offset markers and enforce the service's
// MaxRecords bounds.
type Client struct {
	mu sync.Mutex

	clusters        []types.Cluster
	snapshots       []types.Snapshot
	parameterGroups []types.ClusterParameterGroup
	parameters      map[string][]types.Parameter
	usageLimits     []types.UsageLimit
	subscriptions   []types.EventSubscription
	events          []types.Event
	idcApps         []types.RedshiftIdcApplication
	tags            []types.TaggedResource
	subnetGroups    []types.ClusterSubnetGroup

	calls    []Call
	failures map[string]map[int]error
	pageSize int
	nextID   int
}

// New creates an empty mock client
func New() *Client {
	return &Client{
		parameters: make(map[string][]types.Parameter),
		failures:   make(map[string]map[int]error),
		pageSize:   MaxRecords,
	}
}

// WithClusters seeds clusters
func (m *Client) WithClusters(clusters ...types.Cluster) *Client {
	m.clusters = append(m.clusters, clusters...)
	return m
}

// WithSnapshots seeds snapshots
func (m *Client) WithSnapshots(snapshots ...types.Snapshot) *Client {
	m.snapshots = append(m.snapshots, snapshots...)
	return m
}

// WithParameterGroups seeds parameter groups
func (m *Client) WithParameterGroups(groups ...types.ClusterParameterGroup) *Client {
	m.parameterGroups = append(m.parameterGroups, groups...)
	return m
}

// WithParameters seeds the parameters of a parameter group
func (m *Client) WithParameters(group string, params ...types.Parameter) *Client {
	m.parameters[group] = append(m.parameters[group], params...)
	return m
}

// WithUsageLimits seeds usage limits
func (m *Client) WithUsageLimits(limits ...types.UsageLimit) *Client {
	m.usageLimits = append(m.usageLimits, limits...)
	return m
}

// WithEventSubscriptions seeds event subscriptions
func (m *Client) WithEventSubscriptions(subs ...types.EventSubscription) *Client {
	m.subscriptions = append(m.subscriptions, subs...)
	return m
}

// WithEvents seeds events
func (m *Client) WithEvents(events ...types.Event) *Client {
	m.events = append(m.events, events...)
	return m
}

// WithIdcApplications seeds IAM Identity Center applications
func (m *Client) WithIdcApplications(apps ...types.RedshiftIdcApplication) *Client {
	m.idcApps = append(m.idcApps, apps...)
	return m
}

// WithTaggedResources seeds tags
func (m *Client) WithTaggedResources(tags ...types.TaggedResource) *Client {
	m.tags = append(m.tags, tags...)
	return m
}

// WithSubnetGroups seeds cluster subnet groups
func (m *Client) WithSubnetGroups(groups ...types.ClusterSubnetGroup) *Client {
	m.subnetGroups = append(m.subnetGroups, groups...)
	return m
}

// WithPageSize sets how many items the server returns when MaxRecords is not sent
func (m *Client) WithPageSize(size int) *Client {
	m.pageSize = size
	return m
}

// WithError makes every call of operation fail with err
func (m *Client) WithError(operation string, err error) *Client {
	return m.WithErrorOnCall(operation, 0, err)
}

// WithErrorOnCall makes the n-th (1-based) call of operation fail with err
func (m *Client) WithErrorOnCall(operation string, n int, err error) *Client {
	if m.failures[operation] == nil {
		m.failures[operation] = make(map[int]error)
	}
	m.failures[operation][n] = err
	return m
}

// Calls returns the recorded invocations of operation, or of all operations
// when operation is empty.
func (m *Client) Calls(operation string) []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Call
	for _, c := range m.calls {
		if operation == "" || c.Operation == operation {
			out = append(out, c)
		}
	}
	return out
}

// Fault builds the API error the service returns for code.
func Fault(code, format string, args ...any) error {
	return &smithy.GenericAPIError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Fault:   smithy.FaultClient,
	}
}

// record must be called with m.mu held.
func (m *Client) record(operation string, marker *string, maxRecords *int32) error {
	m.calls = append(m.calls, Call{Operation: operation, Marker: marker, MaxRecords: maxRecords})

	n := 0
	for _, c := range m.calls {
		if c.Operation == operation {
			n++
		}
	}
	if f := m.failures[operation]; f != nil {
		if err, ok := f[n]; ok {
			return err
		}
		if err, ok := f[0]; ok {
			return err
		}
	}
	return nil
}

func (m *Client) id(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%04d", prefix, m.nextID)
}

func paginate[T any](items []T, marker *string, maxRecords *int32, defaultSize int) ([]T, *string, error) {
	size := defaultSize
	if maxRecords != nil {
		if *maxRecords < MinRecords || *maxRecords > MaxRecords {
			return nil, nil, Fault("InvalidParameterValue",
				"MaxRecords must be between %d and %d, got %d", MinRecords, MaxRecords, *maxRecords)
		}
		size = int(*maxRecords)
	}

	start := 0
	if marker != nil && *marker != "" {
		n, err := strconv.Atoi(*marker)
		if err != nil || n < 0 || n > len(items) {
			return nil, nil, Fault("InvalidParameterValue", "invalid marker %q", *marker)
		}
		start = n
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}

	var next *string
	if end < len(items) {
		next = aws.String(strconv.Itoa(end))
	}
	return append([]T(nil), items[start:end]...), next, nil
}

func filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func matches(filterValue *string, value *string) bool {
	return filterValue == nil || *filterValue == "" || aws.ToString(filterValue) == aws.ToString(value)
}

// Clusters

func (m *Client) findCluster(id *string) int {
	for i, c := range m.clusters {
		if aws.ToString(c.ClusterIdentifier) == aws.ToString(id) {
			return i
		}
	}
	return -1
}

func clusterNotFound(id *string) error {
	return Fault("ClusterNotFound", "Cluster %s not found.", aws.ToString(id))
}

func (m *Client) DescribeClusters(ctx context.Context, params *sdk.DescribeClustersInput, optFns ...func(*sdk.Options)) (*sdk.DescribeClustersOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DescribeClusters", params.Marker, params.MaxRecords); err != nil {
		return nil, err
	}

	items := filter(m.clusters, func(c types.Cluster) bool {
		return matches(params.ClusterIdentifier, c.ClusterIdentifier)
	})
	if params.ClusterIdentifier != nil && len(items) == 0 {
		return nil, clusterNotFound(params.ClusterIdentifier)
	}
	page, next, err := paginate(items, params.Marker, params.MaxRecords, m.pageSize)
	if err != nil {
		return nil, err
	}
	return &sdk.DescribeClustersOutput{Clusters: page, Marker: next}, nil
}

func (m *Client) CreateCluster(ctx context.Context, params *sdk.CreateClusterInput, optFns ...func(*sdk.Options)) (*sdk.CreateClusterOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CreateCluster", nil, nil); err != nil {
		return nil, err
	}
	if m.findCluster(params.ClusterIdentifier) >= 0 {
		return nil, Fault("ClusterAlreadyExists", "Cluster already exists")
	}

	cluster := types.Cluster{
		ClusterIdentifier: params.ClusterIdentifier,
		NodeType:          params.NodeType,
		MasterUsername:    params.MasterUsername,
		DBName:            params.DBName,
		ClusterStatus:     aws.String("creating"),
		Tags:              params.Tags,
	}
	m.clusters = append(m.clusters, cluster)
	return &sdk.CreateClusterOutput{Cluster: &cluster}, nil
}

func (m *Client) ModifyCluster(ctx context.Context, params *sdk.ModifyClusterInput, optFns ...func(*sdk.Options)) (*sdk.ModifyClusterOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ModifyCluster", nil, nil); err != nil {
		return nil, err
	}
	i := m.findCluster(params.ClusterIdentifier)
	if i < 0 {
		return nil, clusterNotFound(params.ClusterIdentifier)
	}

	c := &m.clusters[i]
	if params.NodeType != nil {
		c.NodeType = params.NodeType
	}
	if params.NumberOfNodes != nil {
		c.NumberOfNodes = params.NumberOfNodes
	}
	if params.NewClusterIdentifier != nil {
		c.ClusterIdentifier = params.NewClusterIdentifier
	}
	c.ClusterStatus = aws.String("modifying")
	out := *c
	return &sdk.ModifyClusterOutput{Cluster: &out}, nil
}

func (m *Client) DeleteCluster(ctx context.Context, params *sdk.DeleteClusterInput, optFns ...func(*sdk.Options)) (*sdk.DeleteClusterOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteCluster", nil, nil); err != nil {
		return nil, err
	}
	i := m.findCluster(params.ClusterIdentifier)
	if i < 0 {
		return nil, clusterNotFound(params.ClusterIdentifier)
	}

	out := m.clusters[i]
	out.ClusterStatus = aws.String("deleting")
	m.clusters = append(m.clusters[:i], m.clusters[i+1:]...)
	return &sdk.DeleteClusterOutput{Cluster: &out}, nil
}

func (m *Client) transition(operation string, id *string, status string) (*types.Cluster, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(operation, nil, nil); err != nil {
		return nil, err
	}
	i := m.findCluster(id)
	if i < 0 {
		return nil, clusterNotFound(id)
	}
	current := aws.ToString(m.clusters[i].ClusterStatus)
	if (status == "pausing" && current == "paused") || (status == "resuming" && current != "paused") {
		return nil, Fault("InvalidClusterState", "Cluster %s is in state %s", aws.ToString(id), current)
	}
	m.clusters[i].ClusterStatus = aws.String(status)
	out := m.clusters[i]
	return &out, nil
}

func (m *Client) RebootCluster(ctx context.Context, params *sdk.RebootClusterInput, optFns ...func(*sdk.Options)) (*sdk.RebootClusterOutput, error) {
	c, err := m.transition("RebootCluster", params.ClusterIdentifier, "rebooting")
	if err != nil {
		return nil, err
	}
	return &sdk.RebootClusterOutput{Cluster: c}, nil
}

func (m *Client) PauseCluster(ctx context.Context, params *sdk.PauseClusterInput, optFns ...func(*sdk.Options)) (*sdk.PauseClusterOutput, error) {
	c, err := m.transition("PauseCluster", params.ClusterIdentifier, "pausing")
	if err != nil {
		return nil, err
	}
	return &sdk.PauseClusterOutput{Cluster: c}, nil
}

func (m *Client) ResumeCluster(ctx context.Context, params *sdk.ResumeClusterInput, optFns ...func(*sdk.Options)) (*sdk.ResumeClusterOutput, error) {
	c, err := m.transition("ResumeCluster", params.ClusterIdentifier, "resuming")
	if err != nil {
		return nil, err
	}
	return &sdk.ResumeClusterOutput{Cluster: c}, nil
}

// Snapshots

func (m *Client) findSnapshot(id *string) int {
	for i, s := range m.snapshots {
		if aws.ToString(s.SnapshotIdentifier) == aws.ToString(id) {
			return i
		}
	}
	return -1
}

func (m *Client) DescribeClusterSnapshots(ctx context.Context, params *sdk.DescribeClusterSnapshotsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeClusterSnapshotsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DescribeClusterSnapshots", params.Marker, params.MaxRecords); err != nil {
		return nil, err
	}

	items := filter(m.snapshots, func(s types.Snapshot) bool {
		return matches(params.ClusterIdentifier, s.ClusterIdentifier) &&
			matches(params.SnapshotIdentifier, s.SnapshotIdentifier) &&
			matches(params.SnapshotType, s.SnapshotType)
	})
	page, next, err := paginate(items, params.Marker, params.MaxRecords, m.pageSize)
	if err != nil {
		return nil, err
	}
	return &sdk.DescribeClusterSnapshotsOutput{Snapshots: page, Marker: next}, nil
}

func (m *Client) CreateClusterSnapshot(ctx context.Context, params *sdk.CreateClusterSnapshotInput, optFns ...func(*sdk.Options)) (*sdk.CreateClusterSnapshotOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CreateClusterSnapshot", nil, nil); err != nil {
		return nil, err
	}
	if m.findCluster(params.ClusterIdentifier) < 0 {
		return nil, clusterNotFound(params.ClusterIdentifier)
	}
	if m.findSnapshot(params.SnapshotIdentifier) >= 0 {
		return nil, Fault("ClusterSnapshotAlreadyExists", "Snapshot %s already exists", aws.ToString(params.SnapshotIdentifier))
	}

	snapshot := types.Snapshot{
		SnapshotIdentifier: params.SnapshotIdentifier,
		ClusterIdentifier:  params.ClusterIdentifier,
		SnapshotType:       aws.String("manual"),
		Status:             aws.String("creating"),
		Tags:               params.Tags,
	}
	m.snapshots = append(m.snapshots, snapshot)
	return &sdk.CreateClusterSnapshotOutput{Snapshot: &snapshot}, nil
}

func (m *Client) CopyClusterSnapshot(ctx context.Context, params *sdk.CopyClusterSnapshotInput, optFns ...func(*sdk.Options)) (*sdk.CopyClusterSnapshotOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CopyClusterSnapshot", nil, nil); err != nil {
		return nil, err
	}
	i := m.findSnapshot(params.SourceSnapshotIdentifier)
	if i < 0 {
		return nil, Fault("ClusterSnapshotNotFound", "Snapshot %s not found", aws.ToString(params.SourceSnapshotIdentifier))
	}
	if m.findSnapshot(params.TargetSnapshotIdentifier) >= 0 {
		return nil, Fault("ClusterSnapshotAlreadyExists", "Snapshot %s already exists", aws.ToString(params.TargetSnapshotIdentifier))
	}

	snapshot := m.snapshots[i]
	snapshot.SnapshotIdentifier = params.TargetSnapshotIdentifier
	snapshot.SnapshotType = aws.String("manual")
	snapshot.Status = aws.String("available")
	m.snapshots = append(m.snapshots, snapshot)
	return &sdk.CopyClusterSnapshotOutput{Snapshot: &snapshot}, nil
}

func (m *Client) DeleteClusterSnapshot(ctx context.Context, params *sdk.DeleteClusterSnapshotInput, optFns ...func(*sdk.Options)) (*sdk.DeleteClusterSnapshotOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteClusterSnapshot", nil, nil); err != nil {
		return nil, err
	}
	i := m.findSnapshot(params.SnapshotIdentifier)
	if i < 0 {
		return nil, Fault("ClusterSnapshotNotFound", "Snapshot %s not found", aws.ToString(params.SnapshotIdentifier))
	}

	out := m.snapshots[i]
	out.Status = aws.String("deleted")
	m.snapshots = append(m.snapshots[:i], m.snapshots[i+1:]...)
	return &sdk.DeleteClusterSnapshotOutput{Snapshot: &out}, nil
}

// Parameter groups

func (m *Client) findParameterGroup(name *string) int {
	for i, g := range m.parameterGroups {
		if aws.ToString(g.ParameterGroupName) == aws.ToString(name) {
			return i
		}
	}
	return -1
}

func parameterGroupNotFound(name *string) error {
	return Fault("ClusterParameterGroupNotFound", "Parameter group %s not found", aws.ToString(name))
}

func (m *Client) DescribeClusterParameterGroups(ctx context.Context, params *sdk.DescribeClusterParameterGroupsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeClusterParameterGroupsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DescribeClusterParameterGroups", params.Marker, params.MaxRecords); err != nil {
		return nil, err
	}

	items := filter(m.parameterGroups, func(g types.ClusterParameterGroup) bool {
		return matches(params.ParameterGroupName, g.ParameterGroupName)
	})
	page, next, err := paginate(items, params.Marker, params.MaxRecords, m.pageSize)
	if err != nil {
		return nil, err
	}
	return &sdk.DescribeClusterParameterGroupsOutput{ParameterGroups: page, Marker: next}, nil
}

func (m *Client) DescribeClusterParameters(ctx context.Context, params *sdk.DescribeClusterParametersInput, optFns ...func(*sdk.Options)) (*sdk.DescribeClusterParametersOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DescribeClusterParameters", params.Marker, params.MaxRecords); err != nil {
		return nil, err
	}
	if m.findParameterGroup(params.ParameterGroupName) < 0 {
		return nil, parameterGroupNotFound(params.ParameterGroupName)
	}

	items := filter(m.parameters[aws.ToString(params.ParameterGroupName)], func(p types.Parameter) bool {
		return matches(params.Source, p.Source)
	})
	page, next, err := paginate(items, params.Marker, params.MaxRecords, m.pageSize)
	if err != nil {
		return nil, err
	}
	return &sdk.DescribeClusterParametersOutput{Parameters: page, Marker: next}, nil
}

func (m *Client) CreateClusterParameterGroup(ctx context.Context, params *sdk.CreateClusterParameterGroupInput, optFns ...func(*sdk.Options)) (*sdk.CreateClusterParameterGroupOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CreateClusterParameterGroup", nil, nil); err != nil {
		return nil, err
	}
	if m.findParameterGroup(params.ParameterGroupName) >= 0 {
		return nil, Fault("ClusterParameterGroupAlreadyExists", "Parameter group %s already exists", aws.ToString(params.ParameterGroupName))
	}

	group := types.ClusterParameterGroup{
		ParameterGroupName:   params.ParameterGroupName,
		ParameterGroupFamily: params.ParameterGroupFamily,
		Description:          params.Description,
		Tags:                 params.Tags,
	}
	m.parameterGroups = append(m.parameterGroups, group)
	return &sdk.CreateClusterParameterGroupOutput{ClusterParameterGroup: &group}, nil
}

func (m *Client) ModifyClusterParameterGroup(ctx context.Context, params *sdk.ModifyClusterParameterGroupInput, optFns ...func(*sdk.Options)) (*sdk.ModifyClusterParameterGroupOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ModifyClusterParameterGroup", nil, nil); err != nil {
		return nil, err
	}
	if m.findParameterGroup(params.ParameterGroupName) < 0 {
		return nil, parameterGroupNotFound(params.ParameterGroupName)
	}

	name := aws.ToString(params.ParameterGroupName)
	for _, p := range params.Parameters {
		p.Source = aws.String("user")
		replaced := false
		for i, existing := range m.parameters[name] {
			if aws.ToString(existing.ParameterName) == aws.ToString(p.ParameterName) {
				m.parameters[name][i] = p
				replaced = true
			}
		}
		if !replaced {
			m.parameters[name] = append(m.parameters[name], p)
		}
	}
	return &sdk.ModifyClusterParameterGroupOutput{
		ParameterGroupName:   params.ParameterGroupName,
		ParameterGroupStatus: aws.String("Your parameter group has been updated."),
	}, nil
}

func (m *Client) ResetClusterParameterGroup(ctx context.Context, params *sdk.ResetClusterParameterGroupInput, optFns ...func(*sdk.Options)) (*sdk.ResetClusterParameterGroupOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ResetClusterParameterGroup", nil, nil); err != nil {
		return nil, err
	}
	if m.findParameterGroup(params.ParameterGroupName) < 0 {
		return nil, parameterGroupNotFound(params.ParameterGroupName)
	}

	name := aws.ToString(params.ParameterGroupName)
	if aws.ToBool(params.ResetAllParameters) {
		delete(m.parameters, name)
	} else {
		reset := make(map[string]bool)
		for _, p := range params.Parameters {
			reset[aws.ToString(p.ParameterName)] = true
		}
		m.parameters[name] = filter(m.parameters[name], func(p types.Parameter) bool {
			return !reset[aws.ToString(p.ParameterName)]
		})
	}
	return &sdk.ResetClusterParameterGroupOutput{
		ParameterGroupName:   params.ParameterGroupName,
		ParameterGroupStatus: aws.String("Your parameter group has been updated."),
	}, nil
}

func (m *Client) DeleteClusterParameterGroup(ctx context.Context, params *sdk.DeleteClusterParameterGroupInput, optFns ...func(*sdk.Options)) (*sdk.DeleteClusterParameterGroupOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteClusterParameterGroup", nil, nil); err != nil {
		return nil, err
	}
	i := m.findParameterGroup(params.ParameterGroupName)
	if i < 0 {
		return nil, parameterGroupNotFound(params.ParameterGroupName)
	}
	m.parameterGroups = append(m.parameterGroups[:i], m.parameterGroups[i+1:]...)
	delete(m.parameters, aws.ToString(params.ParameterGroupName))
	return &sdk.DeleteClusterParameterGroupOutput{}, nil
}

// Usage limits

func (m *Client) findUsageLimit(id *string) int {
	for i, l := range m.usageLimits {
		if aws.ToString(l.UsageLimitId) == aws.ToString(id) {
			return i
		}
	}
	return -1
}

func usageLimitNotFound(id *string) error {
	return Fault("UsageLimitNotFound", "Usage limit %s not found", aws.ToString(id))
}

func (m *Client) DescribeUsageLimits(ctx context.Context, params *sdk.DescribeUsageLimitsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeUsageLimitsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DescribeUsageLimits", params.Marker, params.MaxRecords); err != nil {
		return nil, err
	}

	items := filter(m.usageLimits, func(l types.UsageLimit) bool {
		return matches(params.UsageLimitId, l.UsageLimitId) &&
			matches(params.ClusterIdentifier, l.ClusterIdentifier) &&
			(params.FeatureType == "" || params.FeatureType == l.FeatureType)
	})
	page, next, err := paginate(items, params.Marker, params.MaxRecords, m.pageSize)
	if err != nil {
		return nil, err
	}
	return &sdk.DescribeUsageLimitsOutput{UsageLimits: page, Marker: next}, nil
}

func (m *Client) CreateUsageLimit(ctx context.Context, params *sdk.CreateUsageLimitInput, optFns ...func(*sdk.Options)) (*sdk.CreateUsageLimitOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CreateUsageLimit", nil, nil); err != nil {
		return nil, err
	}
	if m.findCluster(params.ClusterIdentifier) < 0 {
		return nil, clusterNotFound(params.ClusterIdentifier)
	}

	limit := types.UsageLimit{
		UsageLimitId:      aws.String(m.id("limit")),
		ClusterIdentifier: params.ClusterIdentifier,
		FeatureType:       params.FeatureType,
		LimitType:         params.LimitType,
		Amount:            params.Amount,
		Period:            params.Period,
		BreachAction:      params.BreachAction,
		Tags:              params.Tags,
	}
	m.usageLimits = append(m.usageLimits, limit)
	return &sdk.CreateUsageLimitOutput{
		UsageLimitId:      limit.UsageLimitId,
		ClusterIdentifier: limit.ClusterIdentifier,
		FeatureType:       limit.FeatureType,
		LimitType:         limit.LimitType,
		Amount:            limit.Amount,
		Period:            limit.Period,
		BreachAction:      limit.BreachAction,
		Tags:              limit.Tags,
	}, nil
}

func (m *Client) ModifyUsageLimit(ctx context.Context, params *sdk.ModifyUsageLimitInput, optFns ...func(*sdk.Options)) (*sdk.ModifyUsageLimitOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ModifyUsageLimit", nil, nil); err != nil {
		return nil, err
	}
	i := m.findUsageLimit(params.UsageLimitId)
	if i < 0 {
		return nil, usageLimitNotFound(params.UsageLimitId)
	}

	limit := &m.usageLimits[i]
	if params.Amount != nil {
		limit.Amount = params.Amount
	}
	if params.BreachAction != "" {
		limit.BreachAction = params.BreachAction
	}
	return &sdk.ModifyUsageLimitOutput{
		UsageLimitId:      limit.UsageLimitId,
		ClusterIdentifier: limit.ClusterIdentifier,
		FeatureType:       limit.FeatureType,
		LimitType:         limit.LimitType,
		Amount:            limit.Amount,
		Period:            limit.Period,
		BreachAction:      limit.BreachAction,
		Tags:              limit.Tags,
	}, nil
}

func (m *Client) DeleteUsageLimit(ctx context.Context, params *sdk.DeleteUsageLimitInput, optFns ...func(*sdk.Options)) (*sdk.DeleteUsageLimitOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteUsageLimit", nil, nil); err != nil {
		return nil, err
	}
	i := m.findUsageLimit(params.UsageLimitId)
	if i < 0 {
		return nil, usageLimitNotFound(params.UsageLimitId)
	}
	m.usageLimits = append(m.usageLimits[:i], m.usageLimits[i+1:]...)
	return &sdk.DeleteUsageLimitOutput{}, nil
}

// Events and event subscriptions

func (m *Client) findSubscription(name *string) int {
	for i, s := range m.subscriptions {
		if aws.ToString(s.CustSubscriptionId) == aws.ToString(name) {
			return i
		}
	}
	return -1
}

func subscriptionNotFound(name *string) error {
	return Fault("SubscriptionNotFound", "Subscription %s not found", aws.ToString(name))
}

func (m *Client) DescribeEventSubscriptions(ctx context.Context, params *sdk.DescribeEventSubscriptionsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeEventSubscriptionsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DescribeEventSubscriptions", params.Marker, params.MaxRecords); err != nil {
		return nil, err
	}

	items := filter(m.subscriptions, func(s types.EventSubscription) bool {
		return matches(params.SubscriptionName, s.CustSubscriptionId)
	})
	if params.SubscriptionName != nil && len(items) == 0 {
		return nil, subscriptionNotFound(params.SubscriptionName)
	}
	page, next, err := paginate(items, params.Marker, params.MaxRecords, m.pageSize)
	if err != nil {
		return nil, err
	}
	return &sdk.DescribeEventSubscriptionsOutput{EventSubscriptionsList: page, Marker: next}, nil
}

func (m *Client) CreateEventSubscription(ctx context.Context, params *sdk.CreateEventSubscriptionInput, optFns ...func(*sdk.Options)) (*sdk.CreateEventSubscriptionOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CreateEventSubscription", nil, nil); err != nil {
		return nil, err
	}
	if m.findSubscription(params.SubscriptionName) >= 0 {
		return nil, Fault("SubscriptionAlreadyExist", "Subscription %s already exists", aws.ToString(params.SubscriptionName))
	}

	enabled := params.Enabled
	if enabled == nil {
		enabled = aws.Bool(true)
	}
	sub := types.EventSubscription{
		CustSubscriptionId:  params.SubscriptionName,
		SnsTopicArn:         params.SnsTopicArn,
		SourceType:          params.SourceType,
		SourceIdsList:       params.SourceIds,
		EventCategoriesList: params.EventCategories,
		Severity:            params.Severity,
		Enabled:             enabled,
		Status:              aws.String("active"),
		Tags:                params.Tags,
	}
	m.subscriptions = append(m.subscriptions, sub)
	return &sdk.CreateEventSubscriptionOutput{EventSubscription: &sub}, nil
}

func (m *Client) ModifyEventSubscription(ctx context.Context, params *sdk.ModifyEventSubscriptionInput, optFns ...func(*sdk.Options)) (*sdk.ModifyEventSubscriptionOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ModifyEventSubscription", nil, nil); err != nil {
		return nil, err
	}
	i := m.findSubscription(params.SubscriptionName)
	if i < 0 {
		return nil, subscriptionNotFound(params.SubscriptionName)
	}

	sub := &m.subscriptions[i]
	if params.SnsTopicArn != nil {
		sub.SnsTopicArn = params.SnsTopicArn
	}
	if params.SourceType != nil {
		sub.SourceType = params.SourceType
	}
	if params.SourceIds != nil {
		sub.SourceIdsList = params.SourceIds
	}
	if params.EventCategories != nil {
		sub.EventCategoriesList = params.EventCategories
	}
	if params.Severity != nil {
		sub.Severity = params.Severity
	}
	if params.Enabled != nil {
		sub.Enabled = params.Enabled
	}
	out := *sub
	return &sdk.ModifyEventSubscriptionOutput{EventSubscription: &out}, nil
}

func (m *Client) DeleteEventSubscription(ctx context.Context, params *sdk.DeleteEventSubscriptionInput, optFns ...func(*sdk.Options)) (*sdk.DeleteEventSubscriptionOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteEventSubscription", nil, nil); err != nil {
		return nil, err
	}
	i := m.findSubscription(params.SubscriptionName)
	if i < 0 {
		return nil, subscriptionNotFound(params.SubscriptionName)
	}
	m.subscriptions = append(m.subscriptions[:i], m.subscriptions[i+1:]...)
	return &sdk.DeleteEventSubscriptionOutput{}, nil
}

func (m *Client) DescribeEvents(ctx context.Context, params *sdk.DescribeEventsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeEventsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DescribeEvents", params.Marker, params.MaxRecords); err != nil {
		return nil, err
	}

	items := filter(m.events, func(e types.Event) bool {
		if !matches(params.SourceIdentifier, e.SourceIdentifier) {
			return false
		}
		if params.SourceType != "" && params.SourceType != e.SourceType {
			return false
		}
		if params.StartTime != nil && e.Date != nil && e.Date.Before(*params.StartTime) {
			return false
		}
		if params.EndTime != nil && e.Date != nil && e.Date.After(*params.EndTime) {
			return false
		}
		return true
	})
	page, next, err := paginate(items, params.Marker, params.MaxRecords, m.pageSize)
	if err != nil {
		return nil, err
	}
	return &sdk.DescribeEventsOutput{Events: page, Marker: next}, nil
}

// IAM Identity Center applications

func (m *Client) findIdcApp(arn *string) int {
	for i, a := range m.idcApps {
		if aws.ToString(a.RedshiftIdcApplicationArn) == aws.ToString(arn) {
			return i
		}
	}
	return -1
}

func idcAppNotFound(arn *string) error {
	return Fault("RedshiftIdcApplicationNotExists", "Application %s does not exist", aws.ToString(arn))
}

func (m *Client) DescribeRedshiftIdcApplications(ctx context.Context, params *sdk.DescribeRedshiftIdcApplicationsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeRedshiftIdcApplicationsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DescribeRedshiftIdcApplications", params.Marker, params.MaxRecords); err != nil {
		return nil, err
	}

	items := filter(m.idcApps, func(a types.RedshiftIdcApplication) bool {
		return matches(params.RedshiftIdcApplicationArn, a.RedshiftIdcApplicationArn)
	})
	if params.RedshiftIdcApplicationArn != nil && len(items) == 0 {
		return nil, idcAppNotFound(params.RedshiftIdcApplicationArn)
	}
	page, next, err := paginate(items, params.Marker, params.MaxRecords, m.pageSize)
	if err != nil {
		return nil, err
	}
	return &sdk.DescribeRedshiftIdcApplicationsOutput{RedshiftIdcApplications: page, Marker: next}, nil
}

func (m *Client) CreateRedshiftIdcApplication(ctx context.Context, params *sdk.CreateRedshiftIdcApplicationInput, optFns ...func(*sdk.Options)) (*sdk.CreateRedshiftIdcApplicationOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CreateRedshiftIdcApplication", nil, nil); err != nil {
		return nil, err
	}
	for _, a := range m.idcApps {
		if aws.ToString(a.RedshiftIdcApplicationName) == aws.ToString(params.RedshiftIdcApplicationName) {
			return nil, Fault("RedshiftIdcApplicationAlreadyExists", "Application %s already exists", aws.ToString(params.RedshiftIdcApplicationName))
		}
	}

	app := types.RedshiftIdcApplication{
		RedshiftIdcApplicationArn:  aws.String("arn:aws:redshift:us-east-1:123456789012:redshiftidcapplication:" + m.id("app")),
		RedshiftIdcApplicationName: params.RedshiftIdcApplicationName,
		IdcInstanceArn:             params.IdcInstanceArn,
		IdcDisplayName:             params.IdcDisplayName,
		IamRoleArn:                 params.IamRoleArn,
		IdentityNamespace:          params.IdentityNamespace,
		AuthorizedTokenIssuerList:  params.AuthorizedTokenIssuerList,
		IdcOnboardStatus:           aws.String("ACTIVE"),
	}
	m.idcApps = append(m.idcApps, app)
	return &sdk.CreateRedshiftIdcApplicationOutput{RedshiftIdcApplication: &app}, nil
}

func (m *Client) ModifyRedshiftIdcApplication(ctx context.Context, params *sdk.ModifyRedshiftIdcApplicationInput, optFns ...func(*sdk.Options)) (*sdk.ModifyRedshiftIdcApplicationOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ModifyRedshiftIdcApplication", nil, nil); err != nil {
		return nil, err
	}
	i := m.findIdcApp(params.RedshiftIdcApplicationArn)
	if i < 0 {
		return nil, idcAppNotFound(params.RedshiftIdcApplicationArn)
	}

	app := &m.idcApps[i]
	if params.IdcDisplayName != nil {
		app.IdcDisplayName = params.IdcDisplayName
	}
	if params.IamRoleArn != nil {
		app.IamRoleArn = params.IamRoleArn
	}
	if params.IdentityNamespace != nil {
		app.IdentityNamespace = params.IdentityNamespace
	}
	if params.AuthorizedTokenIssuerList != nil {
		app.AuthorizedTokenIssuerList = params.AuthorizedTokenIssuerList
	}
	out := *app
	return &sdk.ModifyRedshiftIdcApplicationOutput{RedshiftIdcApplication: &out}, nil
}

func (m *Client) DeleteRedshiftIdcApplication(ctx context.Context, params *sdk.DeleteRedshiftIdcApplicationInput, optFns ...func(*sdk.Options)) (*sdk.DeleteRedshiftIdcApplicationOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteRedshiftIdcApplication", nil, nil); err != nil {
		return nil, err
	}
	i := m.findIdcApp(params.RedshiftIdcApplicationArn)
	if i < 0 {
		return nil, idcAppNotFound(params.RedshiftIdcApplicationArn)
	}
	m.idcApps = append(m.idcApps[:i], m.idcApps[i+1:]...)
	return &sdk.DeleteRedshiftIdcApplicationOutput{}, nil
}

// Tags

func (m *Client) DescribeTags(ctx context.Context, params *sdk.DescribeTagsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeTagsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DescribeTags", params.Marker, params.MaxRecords); err != nil {
		return nil, err
	}

	keys := make(map[string]bool)
	for _, k := range params.TagKeys {
		keys[k] = true
	}
	items := filter(m.tags, func(r types.TaggedResource) bool {
		if !matches(params.ResourceName, r.ResourceName) || !matches(params.ResourceType, r.ResourceType) {
			return false
		}
		return len(keys) == 0 || (r.Tag != nil && keys[aws.ToString(r.Tag.Key)])
	})
	page, next, err := paginate(items, params.Marker, params.MaxRecords, m.pageSize)
	if err != nil {
		return nil, err
	}
	return &sdk.DescribeTagsOutput{TaggedResources: page, Marker: next}, nil
}

func (m *Client) CreateTags(ctx context.Context, params *sdk.CreateTagsInput, optFns ...func(*sdk.Options)) (*sdk.CreateTagsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CreateTags", nil, nil); err != nil {
		return nil, err
	}

	for _, tag := range params.Tags {
		tag := tag
		replaced := false
		for i, r := range m.tags {
			if aws.ToString(r.ResourceName) == aws.ToString(params.ResourceName) &&
				r.Tag != nil && aws.ToString(r.Tag.Key) == aws.ToString(tag.Key) {
				m.tags[i].Tag = &tag
				replaced = true
			}
		}
		if !replaced {
			m.tags = append(m.tags, types.TaggedResource{ResourceName: params.ResourceName, Tag: &tag})
		}
	}
	return &sdk.CreateTagsOutput{}, nil
}

func (m *Client) DeleteTags(ctx context.Context, params *sdk.DeleteTagsInput, optFns ...func(*sdk.Options)) (*sdk.DeleteTagsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteTags", nil, nil); err != nil {
		return nil, err
	}

	remove := make(map[string]bool)
	for _, k := range params.TagKeys {
		remove[k] = true
	}
	m.tags = filter(m.tags, func(r types.TaggedResource) bool {
		return aws.ToString(r.ResourceName) != aws.ToString(params.ResourceName) ||
			r.Tag == nil || !remove[aws.ToString(r.Tag.Key)]
	})
	return &sdk.DeleteTagsOutput{}, nil
}

// Subnet groups

func (m *Client) DescribeClusterSubnetGroups(ctx context.Context, params *sdk.DescribeClusterSubnetGroupsInput, optFns ...func(*sdk.Options)) (*sdk.DescribeClusterSubnetGroupsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DescribeClusterSubnetGroups", params.Marker, params.MaxRecords); err != nil {
		return nil, err
	}

	items := filter(m.subnetGroups, func(g types.ClusterSubnetGroup) bool {
		return matches(params.ClusterSubnetGroupName, g.ClusterSubnetGroupName)
	})
	if params.ClusterSubnetGroupName != nil && len(items) == 0 {
		return nil, Fault("ClusterSubnetGroupNotFoundFault", "Subnet group %s not found", aws.ToString(params.ClusterSubnetGroupName))
	}
	page, next, err := paginate(items, params.Marker, params.MaxRecords, m.pageSize)
	if err != nil {
		return nil, err
	}
	return &sdk.DescribeClusterSubnetGroupsOutput{ClusterSubnetGroups: page, Marker: next}, nil
}
